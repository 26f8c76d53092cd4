// Package state holds the timesheet session: an immutable AppState snapshot,
// the closed set of transitions that produce new snapshots, and a Store that
// serializes them.
package state

import (
	"time"

	"github.com/julianstephens/timesheet/internal/calendar"
	"github.com/julianstephens/timesheet/internal/models"
)

// AppState is one snapshot of the session. Values are never modified in place;
// Reduce returns a new AppState and leaves its input untouched.
type AppState struct {
	Entries           []models.Entry
	SelectedDate      time.Time
	SelectedDateDraft time.Time
	NewEntry          models.NewEntryDraft
	// Revision is set by Store and grows with every applied transition.
	Revision uint64
}

// Initial returns the starting snapshot: today (at midnight) as both the selected
// and draft date, an empty new-entry draft and the given entries.
func Initial(now time.Time, entries []models.Entry) AppState {
	today := calendar.DayOf(now).Start(now.Location())
	seeded := make([]models.Entry, len(entries))
	copy(seeded, entries)
	return AppState{
		Entries:           seeded,
		SelectedDate:      today,
		SelectedDateDraft: today,
	}
}

// SelectedDay is the calendar day of SelectedDate.
func (s AppState) SelectedDay() calendar.Day {
	return calendar.DayOf(s.SelectedDate)
}

// DraftDay is the calendar day of SelectedDateDraft.
func (s AppState) DraftDay() calendar.Day {
	return calendar.DayOf(s.SelectedDateDraft)
}

// IsDraft reports whether a date has been picked but not committed.
func (s AppState) IsDraft() bool {
	return s.SelectedDay() != s.DraftDay()
}
