package models

import (
	"time"

	"github.com/julianstephens/timesheet/internal/calendar"
)

// Entry is a named activity between two instants. BeginsOn is always before EndsOn.
// Entries are immutable once appended to the session.
type Entry struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	BeginsOn time.Time `json:"begins_on"`
	EndsOn   time.Time `json:"ends_on"`
}

// Duration returns the full length of the entry.
func (e Entry) Duration() time.Duration {
	return e.EndsOn.Sub(e.BeginsOn)
}

// NewEntryDraft holds the in-progress values of the new-entry form.
// A zero BeginsOn or EndsOn means the bound has not been set.
type NewEntryDraft struct {
	Name     string
	BeginsOn time.Time
	EndsOn   time.Time
}

// DailyHour is the derived hour total for one day of a week summary.
type DailyHour struct {
	Date       time.Time // midnight starting the day
	Day        calendar.Day
	Hours      float64
	IsSelected bool
}
