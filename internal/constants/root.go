package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "timesheet"
	Version           = "v0.1.0"
	DefaultConfigDir  = "~/.config/timesheet"
	DefaultConfigFile = "~/.config/timesheet/config.json"
	LogFileName       = "timesheet.log"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateTimeFormat is the format accepted for entry bounds in forms and seed files
	DateTimeFormat = DateFormat + " " + TimeFormat

	// MonthNameFormat renders a month header, e.g. "October 2026"
	MonthNameFormat = "January 2006"

	DaysPerWeek    = 7
	MinutesPerHour = 60

	// DefaultWeekStart is the first day of the week unless configured otherwise
	DefaultWeekStart = time.Sunday
	DefaultTimezone  = "Local"
)

// Session States
const (
	StateWeek SessionState = iota
	StateGotoDate
	StateNewEntry
)
