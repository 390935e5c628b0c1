package state

import (
	"sync"

	"salonbook/services/feed"
)

// Status is the lifecycle state of a synchronized collection.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Store is the in-memory ordered collection for one scope (one user's
// bookings, or one service's reviews). It exclusively owns its items for
// the lifetime of the scope: local optimistic mutations and remote feed
// events both funnel through its apply methods, which are idempotent so
// that duplicate or weakly-ordered delivery cannot corrupt the collection.
// The invariant held at all times: no two items share an identifier.
type Store[T feed.Entity] struct {
	mu       sync.Mutex
	items    []T
	ids      map[string]struct{}
	status   Status
	lastErr  error
	onChange func([]T)
}

// NewStore creates an empty store in the loading state.
func NewStore[T feed.Entity]() *Store[T] {
	return &Store[T]{
		ids:    make(map[string]struct{}),
		status: StatusLoading,
	}
}

// OnChange registers a callback invoked with a snapshot of the collection
// after every mutation that changed it. Used to recompute derived
// aggregates from the post-apply collection, never from a stale capture.
func (s *Store[T]) OnChange(fn func([]T)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Replace swaps in a freshly loaded collection wholesale. This is the only
// operation allowed to reorder the collection; it marks the store ready.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.ids = make(map[string]struct{}, len(items))
	for _, item := range items {
		s.ids[item.EntityID()] = struct{}{}
	}
	s.status = StatusReady
	s.lastErr = nil
	s.notifyLocked()
}

// Fail records a load failure. Previously loaded items are retained.
func (s *Store[T]) Fail(err error) {
	s.mu.Lock()
	s.status = StatusError
	s.lastErr = err
	s.mu.Unlock()
}

// ApplyInsert prepends the entity (most-recent-first ordering). A duplicate
// identifier makes this a no-op: an initial-load race and the live insert
// notification must not create a duplicate row.
func (s *Store[T]) ApplyInsert(entity T) {
	s.mu.Lock()
	if _, exists := s.ids[entity.EntityID()]; exists {
		s.mu.Unlock()
		return
	}
	s.insertLocked(entity)
	s.notifyLocked()
}

// ApplyUpdate replaces the entity with a matching identifier in place,
// preserving its position. An unknown identifier is treated as an insert:
// the feed's weak ordering permits an update notification to arrive before
// the corresponding insert or initial load.
func (s *Store[T]) ApplyUpdate(entity T) {
	s.mu.Lock()
	id := entity.EntityID()
	if _, exists := s.ids[id]; !exists {
		s.insertLocked(entity)
		s.notifyLocked()
		return
	}
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = entity
			break
		}
	}
	s.notifyLocked()
}

// ApplyDelete removes the entity with a matching identifier. Absence is not
// an error: duplicate or out-of-order delete notifications, and deletes for
// other scopes, land here and are dropped.
func (s *Store[T]) ApplyDelete(id string) {
	s.mu.Lock()
	if _, exists := s.ids[id]; !exists {
		s.mu.Unlock()
		return
	}
	delete(s.ids, id)
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.notifyLocked()
}

// MutateLocally applies an optimistic local change ahead of the confirming
// remote notification: an unknown identifier is prepended, a known one is
// replaced in place. When the confirming feed event later arrives, the
// idempotent applies reconcile it against this entry by identifier.
func (s *Store[T]) MutateLocally(entity T) {
	s.mu.Lock()
	id := entity.EntityID()
	if _, exists := s.ids[id]; !exists {
		s.insertLocked(entity)
		s.notifyLocked()
		return
	}
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = entity
			break
		}
	}
	s.notifyLocked()
}

// Snapshot returns a copy of the items with the store's status and last error.
func (s *Store[T]) Snapshot() ([]T, Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items, s.status, s.lastErr
}

// Len returns the number of items in the collection.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// insertLocked prepends an entity. Caller holds the lock.
func (s *Store[T]) insertLocked(entity T) {
	s.items = append([]T{entity}, s.items...)
	s.ids[entity.EntityID()] = struct{}{}
}

// notifyLocked snapshots the post-apply collection, releases the lock and
// runs the change callback outside it.
func (s *Store[T]) notifyLocked() {
	fn := s.onChange
	var items []T
	if fn != nil {
		items = make([]T, len(s.items))
		copy(items, s.items)
	}
	s.mu.Unlock()
	if fn != nil {
		fn(items)
	}
}
