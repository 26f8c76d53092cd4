package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/state"
	"github.com/julianstephens/timesheet/internal/summary"
	"github.com/julianstephens/timesheet/internal/tui/components/entrylist"
	"github.com/julianstephens/timesheet/internal/tui/components/week"
	"github.com/julianstephens/timesheet/internal/validation"
)

// Options configures how the TUI interprets dates.
type Options struct {
	WeekStart time.Weekday
	Location  *time.Location
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

// snapshotMsg carries a snapshot published by the store.
type snapshotMsg struct {
	State state.AppState
}

type Model struct {
	store       *state.Store
	opts        Options
	updates     chan state.AppState
	unsubscribe func()

	snap              state.AppState
	state             constants.SessionState
	keys              KeyMap
	help              help.Model
	weekModel         week.Model
	entryList         entrylist.Model
	form              *huh.Form
	entryForm         *EntryFormModel
	gotoForm          *GotoFormModel
	status            string // result of the last form submission
	validationWarning string
	quitting          bool
	width             int
	height            int
}

func NewModel(store *state.Store, opts Options) Model {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	// Holds at most the newest snapshot; older ones are superseded.
	updates := make(chan state.AppState, 1)
	storeUnsubscribe := store.Subscribe(func(s state.AppState) {
		select {
		case updates <- s:
		default:
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- s:
			default:
			}
		}
	})

	// The store lock covers listener calls, so no send can follow storeUnsubscribe.
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			storeUnsubscribe()
			close(updates)
		})
	}

	m := Model{
		store:       store,
		opts:        opts,
		updates:     updates,
		unsubscribe: unsubscribe,
		state:       constants.StateWeek,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		weekModel:   week.New(),
		entryList:   entrylist.New(0, 0),
	}
	m.apply(store.Snapshot())
	return m
}

// apply re-derives every view from s.
func (m *Model) apply(s state.AppState) {
	m.snap = s
	m.weekModel.SetDays(summary.WeekSummary(s.SelectedDate, s.Entries, m.opts.WeekStart), s.DraftDay())
	m.entryList.SetEntries(s.SelectedDate, summary.EntriesOnDay(s.SelectedDate, s.Entries))
	m.updateValidationStatus()
}

// updateValidationStatus runs validation and updates the warning message
func (m *Model) updateValidationStatus() {
	result := validation.New().ValidateEntries(m.snap.Entries)
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

func waitForSnapshot(updates <-chan state.AppState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return snapshotMsg{State: s}
	}
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}
