package cli

import (
	"fmt"

	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/format"
	"github.com/julianstephens/timesheet/internal/summary"
)

type WeekCmd struct {
	Date string `arg:"" optional:"" help:"Any date in the week to show (YYYY-MM-DD or 'today'). Defaults to today."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	snap, err := ctx.selectDate(c.Date)
	if err != nil {
		return err
	}

	days := summary.WeekSummary(snap.SelectedDate, snap.Entries, ctx.Config.WeekStart)
	out := ctx.out()

	sel := snap.SelectedDay()
	fmt.Fprintf(out, "Week of %s (%s):\n\n", days[0].Day, format.FormatMonthName(sel.Year, sel.Month))
	for _, d := range days {
		marker := ""
		if d.IsSelected {
			marker = "  *"
		}
		fmt.Fprintf(out, "  %s %s  %6s%s\n",
			format.FormatWeekdayShort(d.Day.Weekday()), d.Date.Format(constants.DateFormat),
			format.FormatHours(d.Hours), marker)
	}
	fmt.Fprintf(out, "\n  %-13s  %6s\n", "Total", format.FormatHours(summary.WeekTotal(days)))

	return nil
}
