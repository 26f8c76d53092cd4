package state

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/logger"
	"github.com/julianstephens/timesheet/internal/validation"
)

// Listener receives every snapshot produced by Dispatch, in dispatch order.
// Listeners run while the store is locked and must not call Dispatch or Subscribe.
type Listener func(AppState)

// Store owns the current snapshot. Dispatch is serialized; Snapshot never blocks.
type Store struct {
	mu        sync.Mutex
	current   atomic.Pointer[AppState]
	listeners map[int]Listener
	order     []int
	nextID    int
}

// NewStore creates a store holding initial.
func NewStore(initial AppState) *Store {
	s := &Store{listeners: make(map[int]Listener)}
	s.current.Store(&initial)
	return s
}

// Snapshot returns the latest snapshot. Callers must treat its slices as read-only.
func (s *Store) Snapshot() AppState {
	return *s.current.Load()
}

// Dispatch applies t and returns the resulting snapshot. Rejected transitions
// leave the snapshot in place and notify nobody.
func (s *Store) Dispatch(t Transition) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	next, err := apply(*prev, t)
	if err != nil {
		if isDraftError(err) {
			logger.Debug("entry rejected", "reason", err.Error())
		} else {
			logger.Warn("transition ignored", "error", err)
		}
		return *prev
	}

	next.Revision = prev.Revision + 1
	s.current.Store(&next)
	logger.Debug("transition",
		"type", transitionName(t),
		"entries", len(next.Entries),
		"selected", next.SelectedDate.Format(constants.DateFormat),
		"draft", next.SelectedDateDraft.Format(constants.DateFormat),
		"revision", next.Revision,
	)

	for _, id := range s.order {
		s.listeners[id](next)
	}
	return next
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func isDraftError(err error) bool {
	for _, target := range []error{
		validation.ErrEmptyName,
		validation.ErrMissingBegin,
		validation.ErrMissingEnd,
		validation.ErrEqualBounds,
		validation.ErrReversedBounds,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func transitionName(t Transition) string {
	switch t.(type) {
	case SetDraftDate:
		return "set_draft_date"
	case CommitDraftDate:
		return "commit_draft_date"
	case SelectDate:
		return "select_date"
	case SetNewEntryField:
		return "set_new_entry_field"
	case AddEntry:
		return "add_entry"
	default:
		return "unknown"
	}
}
