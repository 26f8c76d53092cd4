// Package calendar provides a date-only value type used for every
// day-membership and selection comparison.
package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/timesheet/internal/constants"
)

// Day is a calendar date without time-of-day. The zero value is not a valid day.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day t falls on in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// DayIn returns the calendar day t falls on in loc.
func DayIn(t time.Time, loc *time.Location) Day {
	return DayOf(t.In(loc))
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", s, err)
	}
	return DayOf(t), nil
}

// Start returns midnight at the beginning of d in loc.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// End returns midnight at the beginning of the following calendar day in loc.
func (d Day) End(loc *time.Location) time.Time {
	return d.AddDays(1).Start(loc)
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	// Noon in UTC keeps the arithmetic clear of any DST transition.
	t := time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC)
	return DayOf(t)
}

// Weekday returns the day of the week of d.
func (d Day) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// StartOfWeek returns the first day of the week containing d, where weeks begin on first.
func StartOfWeek(d Day, first time.Weekday) Day {
	offset := (int(d.Weekday()) - int(first) + constants.DaysPerWeek) % constants.DaysPerWeek
	return d.AddDays(-offset)
}

// Week returns the seven consecutive days of the week containing d.
func Week(d Day, first time.Weekday) [constants.DaysPerWeek]Day {
	var days [constants.DaysPerWeek]Day
	start := StartOfWeek(d, first)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}
