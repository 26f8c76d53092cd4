// Package entrylist lists the entries that begin or end on the selected day.
package entrylist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/timesheet/internal/calendar"
	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/format"
	"github.com/julianstephens/timesheet/internal/models"
	"github.com/julianstephens/timesheet/internal/summary"
)

type Item struct {
	Entry models.Entry
	Day   calendar.Day
	Hours float64 // hours of Entry that fall on Day
}

func (i Item) Title() string { return i.Entry.Name }

func (i Item) Description() string {
	return fmt.Sprintf("%s – %s | %s on this day",
		clock(i.Entry.BeginsOn, i.Day), clock(i.Entry.EndsOn, i.Day), format.FormatHours(i.Hours))
}

func (i Item) FilterValue() string { return i.Entry.Name }

// clock shows only the time for instants on day and adds the date otherwise.
func clock(t time.Time, day calendar.Day) string {
	if calendar.DayOf(t) == day {
		return t.Format(constants.TimeFormat)
	}
	return t.Format("Jan 02 " + constants.TimeFormat)
}

type Model struct {
	list list.Model
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Entries"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Model{list: l}
}

// SetEntries shows entries against the calendar day containing day.
func (m *Model) SetEntries(day time.Time, entries []models.Entry) {
	d := calendar.DayOf(day)
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e, Day: d, Hours: summary.HoursOnDay(day, e)}
	}
	m.list.SetItems(items)
}

func (m Model) Items() []Item {
	items := make([]Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if i, ok := it.(Item); ok {
			items = append(items, i)
		}
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No entries on this day.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
