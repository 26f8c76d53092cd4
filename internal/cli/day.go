package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/timesheet/internal/calendar"
	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/format"
	"github.com/julianstephens/timesheet/internal/summary"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today'). Defaults to today."`
}

func (c *DayCmd) Run(ctx *Context) error {
	snap, err := ctx.selectDate(c.Date)
	if err != nil {
		return err
	}

	out := ctx.out()
	day := snap.SelectedDay()
	fmt.Fprintf(out, "Entries on %s:\n\n", day)

	entries := summary.EntriesOnDay(snap.SelectedDate, snap.Entries)
	if len(entries) == 0 {
		fmt.Fprintln(out, "  No entries")
	}
	for _, e := range entries {
		fmt.Fprintf(out, "  %s–%s  %-30s  %6s\n",
			clock(e.BeginsOn, day), clock(e.EndsOn, day), e.Name,
			format.FormatHours(summary.HoursOnDay(snap.SelectedDate, e)))
	}

	fmt.Fprintf(out, "\n  Total: %s\n", format.FormatHours(summary.TotalHours(snap.SelectedDate, snap.Entries)))
	return nil
}

// clock renders t as HH:MM, with the date when it is not on day.
func clock(t time.Time, day calendar.Day) string {
	if calendar.DayOf(t) == day {
		return t.Format(constants.TimeFormat)
	}
	return t.Format(constants.DateTimeFormat)
}
