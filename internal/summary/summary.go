// Package summary derives per-day hours and day membership from entries.
// Every function is pure; a day is the calendar day of the given instant in
// that instant's location, spanning [midnight, next midnight).
package summary

import (
	"time"

	"github.com/julianstephens/timesheet/internal/calendar"
	"github.com/julianstephens/timesheet/internal/models"
)

// HoursOnDay returns how many hours of entry fall within the calendar day containing day.
func HoursOnDay(day time.Time, entry models.Entry) float64 {
	loc := day.Location()
	d := calendar.DayOf(day)
	return overlap(entry, d.Start(loc), d.End(loc)).Hours()
}

// overlap returns the length of [entry.BeginsOn, entry.EndsOn) ∩ [start, end), never negative.
func overlap(entry models.Entry, start, end time.Time) time.Duration {
	from := entry.BeginsOn
	if start.After(from) {
		from = start
	}
	to := entry.EndsOn
	if end.Before(to) {
		to = end
	}
	if !to.After(from) {
		return 0
	}
	return to.Sub(from)
}

// EntriesOnDay returns the entries that begin or end on the calendar day containing day,
// in their original order. An overnight entry appears on both days it touches.
func EntriesOnDay(day time.Time, entries []models.Entry) []models.Entry {
	loc := day.Location()
	d := calendar.DayOf(day)

	var result []models.Entry
	for _, e := range entries {
		if startsOrEndsOn(e, d, loc) {
			result = append(result, e)
		}
	}
	return result
}

func startsOrEndsOn(e models.Entry, d calendar.Day, loc *time.Location) bool {
	return calendar.DayIn(e.BeginsOn, loc) == d || calendar.DayIn(e.EndsOn, loc) == d
}

// TotalHours sums HoursOnDay over EntriesOnDay for the day containing day.
// A day inside a longer entry that neither begins nor ends on it counts nothing.
func TotalHours(day time.Time, entries []models.Entry) float64 {
	loc := day.Location()
	d := calendar.DayOf(day)
	start, end := d.Start(loc), d.End(loc)

	var total time.Duration
	for _, e := range EntriesOnDay(day, entries) {
		total += overlap(e, start, end)
	}
	return total.Hours()
}

// WeekSummary returns the seven days of the week containing selected, beginning on
// first, with the hours logged on each. The day matching selected is flagged.
func WeekSummary(selected time.Time, entries []models.Entry, first time.Weekday) []models.DailyHour {
	loc := selected.Location()
	sel := calendar.DayOf(selected)

	days := calendar.Week(sel, first)
	result := make([]models.DailyHour, 0, len(days))
	for _, d := range days {
		start := d.Start(loc)
		result = append(result, models.DailyHour{
			Date:       start,
			Day:        d,
			Hours:      TotalHours(start, entries),
			IsSelected: d == sel,
		})
	}
	return result
}

// WeekTotal sums the hours of a week summary.
func WeekTotal(days []models.DailyHour) float64 {
	var total float64
	for _, d := range days {
		total += d.Hours
	}
	return total
}
