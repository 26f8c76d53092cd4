package state

import (
	"time"

	"github.com/julianstephens/timesheet/internal/models"
)

// Transition is a user intent applied by Reduce. The set is closed: only the
// types in this file implement it.
type Transition interface {
	transition()
}

// SetDraftDate moves the draft date without touching the selected date.
type SetDraftDate struct {
	Date time.Time
}

// CommitDraftDate makes the draft date the selected date.
type CommitDraftDate struct{}

// SelectDate sets the selected and the draft date in one step.
type SelectDate struct {
	Date time.Time
}

// SetNewEntryField updates one field of the new-entry draft.
type SetNewEntryField struct {
	Field NewEntryField
}

// AddEntry appends the new-entry draft as an entry when it is valid.
// ID is optional; an empty ID is replaced by a random UUID.
type AddEntry struct {
	ID string
}

func (SetDraftDate) transition()     {}
func (CommitDraftDate) transition()  {}
func (SelectDate) transition()       {}
func (SetNewEntryField) transition() {}
func (AddEntry) transition()         {}

// NewEntryField is one of NameField, BeginsOnField or EndsOnField.
type NewEntryField interface {
	apply(models.NewEntryDraft) models.NewEntryDraft
}

// NameField sets the draft's name.
type NameField struct{ Value string }

// BeginsOnField sets the draft's begin instant.
type BeginsOnField struct{ Value time.Time }

// EndsOnField sets the draft's end instant.
type EndsOnField struct{ Value time.Time }

func (f NameField) apply(d models.NewEntryDraft) models.NewEntryDraft {
	d.Name = f.Value
	return d
}

func (f BeginsOnField) apply(d models.NewEntryDraft) models.NewEntryDraft {
	d.BeginsOn = f.Value
	return d
}

func (f EndsOnField) apply(d models.NewEntryDraft) models.NewEntryDraft {
	d.EndsOn = f.Value
	return d
}
