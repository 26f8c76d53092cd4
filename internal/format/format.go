// Package format renders derived values for display.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/timesheet/internal/constants"
)

// FormatHours renders a fractional hour count as "H:MM".
// The value is rounded to the nearest whole minute before it is split, so
// 59.5 minutes becomes "1:00". Negative values render as "0:00".
func FormatHours(hours float64) string {
	if hours <= 0 || math.IsNaN(hours) {
		return "0:00"
	}
	total := int(math.Round(hours * constants.MinutesPerHour))
	return fmt.Sprintf("%d:%02d", total/constants.MinutesPerHour, total%constants.MinutesPerHour)
}

// FormatMonthName renders a month header such as "October 2026".
func FormatMonthName(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(constants.MonthNameFormat)
}

// FormatWeekdayShort returns the two-letter label for a weekday ("Su", "Mo", ...).
func FormatWeekdayShort(day time.Weekday) string {
	return day.String()[:2]
}
