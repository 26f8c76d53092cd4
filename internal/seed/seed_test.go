package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/summary"
)

func TestSample(t *testing.T) {
	// Wednesday
	today := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		first     time.Weekday
		wantDay   int
		wantNight int
	}{
		{name: "sunday start", first: time.Sunday, wantDay: 11, wantNight: 12},
		{name: "monday start", first: time.Monday, wantDay: 12, wantNight: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Sample(today, tt.first)
			if len(entries) != 2 {
				t.Fatalf("expected 2 entries, got %d", len(entries))
			}

			day, night := entries[0], entries[1]
			if day.Name != constants.SampleDayEntryName || night.Name != constants.SampleOvernightEntryName {
				t.Errorf("unexpected names %q, %q", day.Name, night.Name)
			}
			if day.BeginsOn.Day() != tt.wantDay || day.BeginsOn.Hour() != 9 {
				t.Errorf("day entry begins %v", day.BeginsOn)
			}
			if day.Duration() != 6*time.Hour+30*time.Minute {
				t.Errorf("day entry lasts %v", day.Duration())
			}
			if night.BeginsOn.Day() != tt.wantNight || night.EndsOn.Day() != tt.wantNight+1 {
				t.Errorf("overnight entry %v - %v", night.BeginsOn, night.EndsOn)
			}
			if got := summary.TotalHours(night.BeginsOn, entries) + summary.TotalHours(night.EndsOn, entries); got != 9.5 {
				t.Errorf("expected overnight hours 9.5, got %v", got)
			}
			if day.ID == "" || night.ID == "" || day.ID == night.ID {
				t.Errorf("expected distinct IDs, got %q and %q", day.ID, night.ID)
			}
		})
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `[
		{"id": "a", "name": "Mowing lawns", "begins_on": "2026-10-12T09:00:00Z", "ends_on": "2026-10-12T15:30:00Z"},
		{"name": "No id", "begins_on": "2026-10-13T22:00:00Z", "ends_on": "2026-10-14T07:30:00Z"},
		{"id": "a", "name": "Same id", "begins_on": "2026-10-15T08:00:00Z", "ends_on": "2026-10-15T09:00:00Z"},
		{"id": "b", "name": "", "begins_on": "2026-10-15T08:00:00Z", "ends_on": "2026-10-15T09:00:00Z"},
		{"id": "c", "name": "Backwards", "begins_on": "2026-10-15T10:00:00Z", "ends_on": "2026-10-15T09:00:00Z"},
		{"id": "d", "name": "No end", "begins_on": "2026-10-15T10:00:00Z"}
	]`)

	loc := time.FixedZone("UTC-4", -4*60*60)
	entries, err := Load(path, loc)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 valid entries, got %d", len(entries))
	}

	names := []string{"Mowing lawns", "No id", "Same id"}
	ids := make(map[string]bool)
	for i, e := range entries {
		if e.Name != names[i] {
			t.Errorf("entry %d: expected %q, got %q", i, names[i], e.Name)
		}
		if e.ID == "" {
			t.Errorf("entry %d has no ID", i)
		}
		if ids[e.ID] {
			t.Errorf("entry %d reuses ID %q", i, e.ID)
		}
		ids[e.ID] = true
		if e.BeginsOn.Location() != loc {
			t.Errorf("entry %d not converted to the requested location", i)
		}
	}

	if entries[0].ID != "a" {
		t.Errorf("expected first entry to keep its ID, got %q", entries[0].ID)
	}
	if entries[0].BeginsOn.Hour() != 5 {
		t.Errorf("expected 09:00Z to be 05:00 in UTC-4, got %v", entries[0].BeginsOn)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
			wantErr: "not found",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeFile(t, `{"id": `) },
			wantErr: "failed to parse",
		},
		{
			name:    "object instead of array",
			path:    func(t *testing.T) string { return writeFile(t, `{"entries": []}`) },
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t), time.UTC)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
