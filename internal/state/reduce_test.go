package state

import (
	"testing"
	"time"

	"github.com/julianstephens/timesheet/internal/models"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, 0, 0, time.UTC)
}

func baseState() AppState {
	return Initial(at(12, 14, 5), []models.Entry{
		{ID: "mow", Name: "Mowing lawns", BeginsOn: at(12, 9, 0), EndsOn: at(12, 15, 30)},
	})
}

func TestInitial(t *testing.T) {
	s := baseState()

	if !s.SelectedDate.Equal(at(12, 0, 0)) {
		t.Errorf("expected selected date at midnight, got %v", s.SelectedDate)
	}
	if !s.SelectedDateDraft.Equal(s.SelectedDate) {
		t.Errorf("expected draft %v to equal selected %v", s.SelectedDateDraft, s.SelectedDate)
	}
	if s.NewEntry.Name != "" || !s.NewEntry.BeginsOn.IsZero() || !s.NewEntry.EndsOn.IsZero() {
		t.Errorf("expected empty new entry, got %+v", s.NewEntry)
	}
	if len(s.Entries) != 1 {
		t.Errorf("expected 1 seeded entry, got %d", len(s.Entries))
	}
	if s.IsDraft() {
		t.Error("fresh state should not be a draft")
	}
}

func TestSetDraftDateAndCommit(t *testing.T) {
	s := baseState()
	target := at(15, 0, 0)

	drafted := Reduce(s, SetDraftDate{Date: target})
	if !drafted.SelectedDate.Equal(s.SelectedDate) {
		t.Errorf("SetDraftDate changed selected date to %v", drafted.SelectedDate)
	}
	if !drafted.SelectedDateDraft.Equal(target) {
		t.Errorf("expected draft %v, got %v", target, drafted.SelectedDateDraft)
	}
	if !drafted.IsDraft() {
		t.Error("expected IsDraft after moving the draft to another day")
	}

	committed := Reduce(drafted, CommitDraftDate{})
	if !committed.SelectedDate.Equal(target) {
		t.Errorf("expected selected %v after commit, got %v", target, committed.SelectedDate)
	}
	if committed.IsDraft() {
		t.Error("commit should clear the draft flag")
	}

	if !s.SelectedDateDraft.Equal(at(12, 0, 0)) {
		t.Error("Reduce modified its input")
	}
}

func TestSetDraftDateSameDayIsNotDraft(t *testing.T) {
	s := Reduce(baseState(), SetDraftDate{Date: at(12, 18, 0)})
	if s.IsDraft() {
		t.Error("a draft on the selected day should not count as a draft")
	}
}

func TestSelectDate(t *testing.T) {
	s := Reduce(baseState(), SetDraftDate{Date: at(20, 0, 0)})
	s = Reduce(s, SelectDate{Date: at(14, 0, 0)})

	if !s.SelectedDate.Equal(at(14, 0, 0)) || !s.SelectedDateDraft.Equal(at(14, 0, 0)) {
		t.Errorf("expected selected and draft on the 14th, got %v / %v", s.SelectedDate, s.SelectedDateDraft)
	}
}

func TestSetNewEntryField(t *testing.T) {
	tests := []struct {
		name  string
		field NewEntryField
		check func(models.NewEntryDraft) bool
	}{
		{
			name:  "name",
			field: NameField{Value: "Reading"},
			check: func(d models.NewEntryDraft) bool {
				return d.Name == "Reading" && d.BeginsOn.Equal(at(1, 8, 0)) && d.EndsOn.Equal(at(1, 9, 0))
			},
		},
		{
			name:  "begins on",
			field: BeginsOnField{Value: at(2, 7, 0)},
			check: func(d models.NewEntryDraft) bool {
				return d.Name == "draft" && d.BeginsOn.Equal(at(2, 7, 0)) && d.EndsOn.Equal(at(1, 9, 0))
			},
		},
		{
			name:  "ends on",
			field: EndsOnField{Value: at(2, 10, 0)},
			check: func(d models.NewEntryDraft) bool {
				return d.Name == "draft" && d.BeginsOn.Equal(at(1, 8, 0)) && d.EndsOn.Equal(at(2, 10, 0))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseState()
			s.NewEntry = models.NewEntryDraft{Name: "draft", BeginsOn: at(1, 8, 0), EndsOn: at(1, 9, 0)}

			next := Reduce(s, SetNewEntryField{Field: tt.field})
			if !tt.check(next.NewEntry) {
				t.Errorf("unexpected draft %+v", next.NewEntry)
			}
			if s.NewEntry.Name != "draft" {
				t.Error("Reduce modified its input")
			}
		})
	}
}

func fillDraft(s AppState, name string, begins, ends time.Time) AppState {
	s = Reduce(s, SetNewEntryField{Field: NameField{Value: name}})
	s = Reduce(s, SetNewEntryField{Field: BeginsOnField{Value: begins}})
	return Reduce(s, SetNewEntryField{Field: EndsOnField{Value: ends}})
}

func TestAddEntryValid(t *testing.T) {
	s := fillDraft(baseState(), "Overnight security watch", at(13, 22, 0), at(14, 7, 30))

	next := Reduce(s, AddEntry{ID: "watch"})
	if len(next.Entries) != len(s.Entries)+1 {
		t.Fatalf("expected %d entries, got %d", len(s.Entries)+1, len(next.Entries))
	}
	added := next.Entries[len(next.Entries)-1]
	if added.ID != "watch" || added.Name != "Overnight security watch" {
		t.Errorf("unexpected entry %+v", added)
	}
	if !added.BeginsOn.Equal(at(13, 22, 0)) || !added.EndsOn.Equal(at(14, 7, 30)) {
		t.Errorf("unexpected bounds %v - %v", added.BeginsOn, added.EndsOn)
	}
	if next.NewEntry.Name != "" {
		t.Errorf("expected name reset, got %q", next.NewEntry.Name)
	}
	if !next.NewEntry.BeginsOn.Equal(at(13, 22, 0)) || !next.NewEntry.EndsOn.Equal(at(14, 7, 30)) {
		t.Error("expected draft bounds to be kept")
	}
	if len(s.Entries) != 1 {
		t.Error("Reduce modified the input entry sequence")
	}
}

func TestAddEntryGeneratesID(t *testing.T) {
	s := fillDraft(baseState(), "Reading", at(12, 20, 0), at(12, 21, 0))
	a := Reduce(s, AddEntry{})
	b := Reduce(s, AddEntry{})

	idA := a.Entries[len(a.Entries)-1].ID
	idB := b.Entries[len(b.Entries)-1].ID
	if idA == "" || idB == "" {
		t.Fatal("expected generated IDs")
	}
	if idA == idB {
		t.Errorf("expected distinct IDs, got %q twice", idA)
	}
}

func TestAddEntryInvalidIsNoOp(t *testing.T) {
	tests := []struct {
		name  string
		draft models.NewEntryDraft
	}{
		{name: "empty name", draft: models.NewEntryDraft{BeginsOn: at(12, 9, 0), EndsOn: at(12, 10, 0)}},
		{name: "whitespace name", draft: models.NewEntryDraft{Name: "   ", BeginsOn: at(12, 9, 0), EndsOn: at(12, 10, 0)}},
		{name: "missing begin", draft: models.NewEntryDraft{Name: "x", EndsOn: at(12, 10, 0)}},
		{name: "missing end", draft: models.NewEntryDraft{Name: "x", BeginsOn: at(12, 9, 0)}},
		{name: "equal bounds", draft: models.NewEntryDraft{Name: "x", BeginsOn: at(12, 9, 0), EndsOn: at(12, 9, 0)}},
		{name: "reversed bounds", draft: models.NewEntryDraft{Name: "x", BeginsOn: at(12, 10, 0), EndsOn: at(12, 9, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseState()
			s.NewEntry = tt.draft

			next := Reduce(s, AddEntry{})
			if len(next.Entries) != len(s.Entries) {
				t.Errorf("expected %d entries, got %d", len(s.Entries), len(next.Entries))
			}
			if next.NewEntry != tt.draft {
				t.Errorf("expected draft untouched, got %+v", next.NewEntry)
			}
		})
	}
}

func TestSetNewEntryFieldNilIsNoOp(t *testing.T) {
	s := baseState()
	s.NewEntry.Name = "keep"
	if next := Reduce(s, SetNewEntryField{}); next.NewEntry.Name != "keep" {
		t.Errorf("expected draft untouched, got %+v", next.NewEntry)
	}
}
