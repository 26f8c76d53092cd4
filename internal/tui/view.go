package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/format"
	"github.com/julianstephens/timesheet/internal/summary"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateNewEntry:
		content = m.viewForm("New entry")
	case constants.StateGotoDate:
		content = m.viewForm("Go to date")
	default:
		content = m.viewWeek()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
	return docStyle.Render(ui)
}

func (m Model) viewHeader() string {
	sel := m.snap.SelectedDay()
	month := monthStyle.Render(format.FormatMonthName(sel.Year, sel.Month))

	date := dateStyle.Render(fmt.Sprintf("%s %s", sel.Weekday(), sel))
	if m.snap.IsDraft() {
		draft := m.snap.DraftDay()
		arrow := "→"
		if draft.Before(sel) {
			arrow = "←"
		}
		date = draftDateStyle.Render(fmt.Sprintf("%s %s %s (enter to show)", arrow, draft.Weekday(), draft))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, month, date)
}

func (m Model) viewWeek() string {
	total := summary.TotalHours(m.snap.SelectedDate, m.snap.Entries)
	dayTotal := fmt.Sprintf("%s: %s",
		m.snap.SelectedDay(), dayTotalStyle.Render(format.FormatHours(total)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.weekModel.View(),
		"",
		dayTotal,
		m.entryList.View(),
	)
}

func (m Model) viewForm(title string) string {
	if m.form == nil {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, "", formTitleStyle.Render(title), m.form.View())
}

func (m Model) viewStatus() string {
	var lines []string
	if m.validationWarning != "" {
		lines = append(lines, warningStyle.Render(m.validationWarning))
	}
	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status))
	}
	if len(lines) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
