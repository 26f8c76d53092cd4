package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timesheet/internal/utils"
)

// EntryFormModel holds the raw text of the new-entry form.
type EntryFormModel struct {
	Name     string
	BeginsOn string
	EndsOn   string
}

// GotoFormModel holds the raw text of the go-to-date form.
type GotoFormModel struct {
	Date string
}

func validateDateTime(loc *time.Location) func(string) error {
	return func(s string) error {
		_, err := utils.ParseDateTimeInLocation(s, loc)
		return err
	}
}

// NewEntryForm creates the form for adding an entry
func NewEntryForm(fm *EntryFormModel, loc *time.Location) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("entry name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Begins").
				Description("YYYY-MM-DD HH:MM").
				Value(&fm.BeginsOn).
				Validate(validateDateTime(loc)),
			huh.NewInput().
				Title("Ends").
				Description("YYYY-MM-DD HH:MM").
				Value(&fm.EndsOn).
				Validate(validateDateTime(loc)),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewGotoForm creates the form for jumping to a date
func NewGotoForm(fm *GotoFormModel, now func() time.Time, loc *time.Location) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Go to date").
				Description("YYYY-MM-DD or 'today'").
				Value(&fm.Date).
				Validate(func(s string) error {
					_, err := utils.ParseDateInLocation(s, now(), loc)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
