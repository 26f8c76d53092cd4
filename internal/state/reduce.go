package state

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/timesheet/internal/models"
	"github.com/julianstephens/timesheet/internal/validation"
)

// Reduce applies t to s and returns the next snapshot.
// An AddEntry with an invalid draft returns s unchanged.
func Reduce(s AppState, t Transition) AppState {
	next, _ := apply(s, t)
	return next
}

// apply is Reduce with the reason an AddEntry was rejected.
func apply(s AppState, t Transition) (AppState, error) {
	switch t := t.(type) {
	case SetDraftDate:
		s.SelectedDateDraft = t.Date
	case CommitDraftDate:
		s.SelectedDate = s.SelectedDateDraft
	case SelectDate:
		s.SelectedDate = t.Date
		s.SelectedDateDraft = t.Date
	case SetNewEntryField:
		if t.Field == nil {
			return s, nil
		}
		s.NewEntry = t.Field.apply(s.NewEntry)
	case AddEntry:
		if err := validation.ValidateDraft(s.NewEntry); err != nil {
			return s, err
		}
		id := t.ID
		if id == "" {
			id = uuid.New().String()
		}
		entries := make([]models.Entry, len(s.Entries), len(s.Entries)+1)
		copy(entries, s.Entries)
		s.Entries = append(entries, models.Entry{
			ID:       id,
			Name:     strings.TrimSpace(s.NewEntry.Name),
			BeginsOn: s.NewEntry.BeginsOn,
			EndsOn:   s.NewEntry.EndsOn,
		})
		s.NewEntry.Name = ""
	default:
		return s, fmt.Errorf("unknown transition %T", t)
	}
	return s, nil
}
