// Package seed provides the starting entry sequence of a session: the
// built-in sample week or entries imported from a JSON file.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/timesheet/internal/calendar"
	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/logger"
	"github.com/julianstephens/timesheet/internal/models"
	"github.com/julianstephens/timesheet/internal/validation"
)

// Sample returns the example entries for the week containing today:
// a daytime entry on the first day of the week and an overnight entry
// from the second day into the third.
func Sample(today time.Time, first time.Weekday) []models.Entry {
	loc := today.Location()
	start := calendar.StartOfWeek(calendar.DayOf(today), first)

	at := func(d calendar.Day, hour, minute int) time.Time {
		return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
	}

	return []models.Entry{
		{
			ID:       uuid.New().String(),
			Name:     constants.SampleDayEntryName,
			BeginsOn: at(start, 9, 0),
			EndsOn:   at(start, 15, 30),
		},
		{
			ID:       uuid.New().String(),
			Name:     constants.SampleOvernightEntryName,
			BeginsOn: at(start.AddDays(1), 22, 0),
			EndsOn:   at(start.AddDays(2), 7, 30),
		},
	}
}

// Load reads a JSON array of entries from path and converts their instants to loc.
// Records that could not be added through the new-entry form are skipped with a
// warning; missing or repeated IDs are replaced with fresh UUIDs.
func Load(path string, loc *time.Location) ([]models.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("entries file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read entries file: %w", err)
	}

	var records []models.Entry
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse entries file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(records))
	entries := make([]models.Entry, 0, len(records))
	for i, e := range records {
		if err := validation.ValidateEntry(e); err != nil {
			logger.Warn("skipping entry", "file", path, "index", i, "name", e.Name, "reason", err.Error())
			continue
		}
		if e.ID == "" || seen[e.ID] {
			if e.ID != "" {
				logger.Warn("duplicate entry id, assigning a new one", "file", path, "index", i, "id", e.ID)
			}
			e.ID = uuid.New().String()
		}
		seen[e.ID] = true

		e.BeginsOn = e.BeginsOn.In(loc)
		e.EndsOn = e.EndsOn.In(loc)
		entries = append(entries, e)
	}

	logger.Debug("entries loaded", "file", path, "count", len(entries), "skipped", len(records)-len(entries))
	return entries, nil
}
