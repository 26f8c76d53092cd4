package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timesheet/internal/calendar"
	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/logger"
	"github.com/julianstephens/timesheet/internal/state"
	"github.com/julianstephens/timesheet/internal/utils"
	"github.com/julianstephens/timesheet/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// header, week strip, status lines and help
		m.entryList.SetSize(msg.Width-4, max(msg.Height-16, 3))
		return m, nil

	case snapshotMsg:
		// dispatch already applied anything this recent
		if msg.State.Revision > m.snap.Revision {
			m.apply(msg.State)
		}
		return m, waitForSnapshot(m.updates)
	}

	switch m.state {
	case constants.StateNewEntry:
		cmd := m.updateEntryForm(msg)
		return m, cmd
	case constants.StateGotoDate:
		cmd := m.updateGotoForm(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		m.unsubscribe()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.PrevDay):
		m.moveDraft(-1)
	case key.Matches(keyMsg, m.keys.NextDay):
		m.moveDraft(1)
	case key.Matches(keyMsg, m.keys.PrevWeek):
		m.moveDraft(-constants.DaysPerWeek)
	case key.Matches(keyMsg, m.keys.NextWeek):
		m.moveDraft(constants.DaysPerWeek)
	case key.Matches(keyMsg, m.keys.Commit):
		m.dispatch(state.CommitDraftDate{})
	case key.Matches(keyMsg, m.keys.PickDay):
		m.pickDay(keyMsg.String())
	case key.Matches(keyMsg, m.keys.GotoDate):
		cmd := m.openGotoForm()
		return m, cmd
	case key.Matches(keyMsg, m.keys.Add):
		cmd := m.openEntryForm()
		return m, cmd
	default:
		var cmd tea.Cmd
		m.entryList, cmd = m.entryList.Update(msg)
		return m, cmd
	}

	return m, nil
}

// dispatch sends t to the store and shows the result right away; the matching
// snapshotMsg that follows is then a no-op.
func (m *Model) dispatch(t state.Transition) {
	m.apply(m.store.Dispatch(t))
}

func (m *Model) moveDraft(days int) {
	m.status = ""
	next := m.snap.DraftDay().AddDays(days)
	m.dispatch(state.SetDraftDate{Date: next.Start(m.opts.Location)})
}

// pickDay selects the n-th day (1-based) of the visible week.
func (m *Model) pickDay(n string) {
	if len(n) != 1 || n[0] < '1' || n[0] > '7' {
		return
	}
	m.status = ""
	start := calendar.StartOfWeek(m.snap.SelectedDay(), m.opts.WeekStart)
	day := start.AddDays(int(n[0] - '1'))
	m.dispatch(state.SelectDate{Date: day.Start(m.opts.Location)})
}

func (m *Model) openGotoForm() tea.Cmd {
	m.gotoForm = &GotoFormModel{Date: m.snap.DraftDay().String()}
	m.form = NewGotoForm(m.gotoForm, m.opts.Now, m.opts.Location)
	m.state = constants.StateGotoDate
	return m.form.Init()
}

// openEntryForm prefills the form from the session's new-entry draft. Bounds
// that were never set start on the selected day.
func (m *Model) openEntryForm() tea.Cmd {
	draft := m.snap.NewEntry
	day := m.snap.SelectedDay().String()

	m.entryForm = &EntryFormModel{
		Name:     draft.Name,
		BeginsOn: utils.FormatDateTime(draft.BeginsOn),
		EndsOn:   utils.FormatDateTime(draft.EndsOn),
	}
	if m.entryForm.BeginsOn == "" {
		m.entryForm.BeginsOn = day + " 09:00"
	}
	if m.entryForm.EndsOn == "" {
		m.entryForm.EndsOn = day + " 17:00"
	}

	m.form = NewEntryForm(m.entryForm, m.opts.Location)
	m.state = constants.StateNewEntry
	return m.form.Init()
}

// updateForm forwards msg to the open form. It reports the form's state after
// the update, or huh.StateAborted when esc was pressed.
func (m *Model) updateForm(msg tea.Msg) (huh.FormState, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return huh.StateAborted, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return m.form.State, cmd
}

func (m *Model) updateEntryForm(msg tea.Msg) tea.Cmd {
	formState, cmd := m.updateForm(msg)
	switch formState {
	case huh.StateCompleted:
		m.submitEntry(*m.entryForm)
		m.closeForm()
		return nil
	case huh.StateAborted:
		m.closeForm()
		return nil
	}
	return cmd
}

func (m *Model) updateGotoForm(msg tea.Msg) tea.Cmd {
	formState, cmd := m.updateForm(msg)
	switch formState {
	case huh.StateCompleted:
		m.submitGoto(*m.gotoForm)
		m.closeForm()
		return nil
	case huh.StateAborted:
		m.closeForm()
		return nil
	}
	return cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.entryForm = nil
	m.gotoForm = nil
	m.state = constants.StateWeek
}

// submitEntry records the form values on the draft and tries to add it.
// Unparseable bounds are stored as unset, so AddEntry rejects them.
func (m *Model) submitEntry(fm EntryFormModel) {
	begins, err := utils.ParseDateTimeInLocation(fm.BeginsOn, m.opts.Location)
	if err != nil {
		logger.Debug("begin time not parsed", "value", fm.BeginsOn, "error", err)
	}
	ends, err := utils.ParseDateTimeInLocation(fm.EndsOn, m.opts.Location)
	if err != nil {
		logger.Debug("end time not parsed", "value", fm.EndsOn, "error", err)
	}

	m.dispatch(state.SetNewEntryField{Field: state.NameField{Value: fm.Name}})
	m.dispatch(state.SetNewEntryField{Field: state.BeginsOnField{Value: begins}})
	m.dispatch(state.SetNewEntryField{Field: state.EndsOnField{Value: ends}})

	if err := validation.ValidateDraft(m.snap.NewEntry); err != nil {
		m.status = fmt.Sprintf("Entry not added: %v", err)
	} else {
		m.status = fmt.Sprintf("Added %q", strings.TrimSpace(fm.Name))
	}
	m.dispatch(state.AddEntry{})
}

func (m *Model) submitGoto(fm GotoFormModel) {
	date, err := utils.ParseDateInLocation(fm.Date, m.opts.Now(), m.opts.Location)
	if err != nil {
		m.status = fmt.Sprintf("Invalid date %q", fm.Date)
		return
	}
	m.status = ""
	m.dispatch(state.SetDraftDate{Date: date})
}
