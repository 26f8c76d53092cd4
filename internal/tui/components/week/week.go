// Package week renders the seven-day hour strip of the selected week.
package week

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/timesheet/internal/calendar"
	"github.com/julianstephens/timesheet/internal/format"
	"github.com/julianstephens/timesheet/internal/models"
	"github.com/julianstephens/timesheet/internal/summary"
)

const cellWidth = 9

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238"))

	selectedCellStyle = cellStyle.
				BorderForeground(lipgloss.Color("205")).
				Bold(true)

	draftCellStyle = cellStyle.
			BorderForeground(lipgloss.Color("214")).
			BorderStyle(lipgloss.NormalBorder())

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	hoursStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	busyHoursStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			MarginTop(1)
)

type Model struct {
	days  []models.DailyHour
	draft calendar.Day
}

func New() Model {
	return Model{}
}

// SetDays replaces the strip. draft marks the day the date picker is on;
// it is only drawn when it falls inside the week and differs from the selection.
func (m *Model) SetDays(days []models.DailyHour, draft calendar.Day) {
	m.days = days
	m.draft = draft
}

func (m Model) Days() []models.DailyHour {
	return m.days
}

func (m Model) View() string {
	if len(m.days) == 0 {
		return ""
	}

	cells := make([]string, 0, len(m.days))
	for i, d := range m.days {
		label := labelStyle.Render(fmt.Sprintf("%s %02d", format.FormatWeekdayShort(d.Day.Weekday()), d.Day.Day))

		hs := hoursStyle
		if d.Hours > 0 {
			hs = busyHoursStyle
		}
		hours := hs.Render(format.FormatHours(d.Hours))
		key := hoursStyle.Render(fmt.Sprintf("[%d]", i+1))

		style := cellStyle
		switch {
		case d.IsSelected:
			style = selectedCellStyle
		case !m.draft.IsZero() && d.Day == m.draft:
			style = draftCellStyle
		}
		cells = append(cells, style.Render(lipgloss.JoinVertical(lipgloss.Center, label, hours, key)))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	total := totalStyle.Render("Week total: " + format.FormatHours(summary.WeekTotal(m.days)))
	return lipgloss.JoinVertical(lipgloss.Left, strip, total)
}
