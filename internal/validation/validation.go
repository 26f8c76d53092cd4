package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/models"
)

// Reasons a new-entry draft cannot become an entry.
var (
	ErrEmptyName      = errors.New("name is empty")
	ErrMissingBegin   = errors.New("begin time is not set")
	ErrMissingEnd     = errors.New("end time is not set")
	ErrEqualBounds    = errors.New("begin and end are the same instant")
	ErrReversedBounds = errors.New("end is before begin")
)

// ValidateDraft reports the first reason draft cannot be added, or nil.
func ValidateDraft(draft models.NewEntryDraft) error {
	return validateBounds(draft.Name, draft.BeginsOn, draft.EndsOn)
}

// ValidateEntry applies the draft rules to an already built entry.
func ValidateEntry(entry models.Entry) error {
	return validateBounds(entry.Name, entry.BeginsOn, entry.EndsOn)
}

func validateBounds(name string, begins, ends time.Time) error {
	switch {
	case strings.TrimSpace(name) == "":
		return ErrEmptyName
	case begins.IsZero():
		return ErrMissingBegin
	case ends.IsZero():
		return ErrMissingEnd
	case begins.Equal(ends):
		return fmt.Errorf("%w: %s", ErrEqualBounds, begins.Format(constants.DateTimeFormat))
	case ends.Before(begins):
		return fmt.Errorf("%w: %s < %s", ErrReversedBounds,
			ends.Format(constants.DateTimeFormat), begins.Format(constants.DateTimeFormat))
	}
	return nil
}

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidEntry       ConflictType = "invalid_entry"
	ConflictDuplicateEntryID   ConflictType = "duplicate_entry_id"
	ConflictOverlappingEntries ConflictType = "overlapping_entries"
)

// Conflict represents a detected problem in a sequence of entries
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // entry names involved
	EntryIDs    []string
	Err         error // set for ConflictInvalidEntry
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Count returns the number of conflicts of the given type.
func (vr *ValidationResult) Count(kind ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == kind {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks entry sequences for problems
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateEntries checks entries for invalid bounds, reused IDs and overlapping intervals.
// Overlaps are informational: the same person rarely does two things at once, but
// nothing in the timesheet forbids it.
func (v *Validator) ValidateEntries(entries []models.Entry) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	ids := make(map[string][]string)
	valid := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if err := ValidateEntry(e); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidEntry,
				Description: fmt.Sprintf("Entry %q is invalid: %v", e.Name, err),
				Items:       []string{e.Name},
				EntryIDs:    []string{e.ID},
				Err:         err,
			})
			continue
		}
		valid = append(valid, e)
		if e.ID != "" {
			ids[e.ID] = append(ids[e.ID], e.Name)
		}
	}

	dupIDs := make([]string, 0)
	for id, names := range ids {
		if len(names) > 1 {
			dupIDs = append(dupIDs, id)
		}
	}
	sort.Strings(dupIDs)
	for _, id := range dupIDs {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDuplicateEntryID,
			Description: fmt.Sprintf("Duplicate entry ID: %s (%s)", id, strings.Join(ids[id], ", ")),
			Items:       ids[id],
			EntryIDs:    []string{id},
		})
	}

	sorted := make([]models.Entry, len(valid))
	copy(sorted, valid)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BeginsOn.Before(sorted[j].BeginsOn)
	})
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			// sorted by begin, so nothing later can overlap sorted[i]
			if !sorted[j].BeginsOn.Before(sorted[i].EndsOn) {
				break
			}
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictOverlappingEntries,
				Description: fmt.Sprintf("Entries %q and %q overlap (%s - %s)",
					sorted[i].Name, sorted[j].Name,
					sorted[j].BeginsOn.Format(constants.DateTimeFormat),
					minTime(sorted[i].EndsOn, sorted[j].EndsOn).Format(constants.DateTimeFormat)),
				Items:    []string{sorted[i].Name, sorted[j].Name},
				EntryIDs: []string{sorted[i].ID, sorted[j].ID},
			})
		}
	}

	return result
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
