package state

import (
	"context"
	"sync"

	"salonbook/services/feed"

	"go.uber.org/zap"
)

// Fetch loads the full current collection of a scope from the remote gateway.
type Fetch[T feed.Entity] func(ctx context.Context) ([]T, error)

// View ties one scope's Store to its live subscription. Open performs the
// initial load and subscribes; Close unsubscribes and discards any load
// still in flight. A view whose subscription could not be established keeps
// working in load-only mode: Refresh still reaches the gateway.
type View[T feed.Entity] struct {
	store      *Store[T]
	fetch      Fetch[T]
	subscriber feed.Subscriber[T]
	scope      feed.Scope
	logger     *zap.Logger

	mu   sync.Mutex
	gen  int
	sub  *feed.Subscription[T]
	open bool

	changes chan struct{}
}

// NewView creates a view over a fresh store. A nil subscriber yields a
// load-only view.
func NewView[T feed.Entity](fetch Fetch[T], subscriber feed.Subscriber[T], scope feed.Scope, logger *zap.Logger) *View[T] {
	return &View[T]{
		store:      NewStore[T](),
		fetch:      fetch,
		subscriber: subscriber,
		scope:      scope,
		logger:     logger,
		changes:    make(chan struct{}, 1),
	}
}

// Store exposes the underlying store, e.g. for optimistic local mutations
// and aggregate registration.
func (v *View[T]) Store() *Store[T] {
	return v.store
}

// Changes signals (coalesced) whenever the collection or its status moved.
func (v *View[T]) Changes() <-chan struct{} {
	return v.changes
}

// Open loads the collection and establishes the live subscription. A load
// failure leaves the store in the error state with prior items retained. A
// subscription failure is returned (wrapping feed.ErrSubscriptionFailed)
// exactly once and leaves the view in load-only mode; callers surface it
// and carry on.
func (v *View[T]) Open(ctx context.Context) error {
	v.mu.Lock()
	if v.open {
		v.mu.Unlock()
		return nil
	}
	v.open = true
	v.mu.Unlock()

	v.store.OnChange(func([]T) { v.signal() })

	loadErr := v.Refresh(ctx)

	if v.subscriber != nil {
		sub, err := v.subscriber.Subscribe(ctx, v.scope)
		if err != nil {
			return err
		}
		v.mu.Lock()
		v.sub = sub
		v.mu.Unlock()
		go v.pump(sub)
	}

	return loadErr
}

// Refresh re-fetches the collection and replaces local state wholesale.
// On a closed view it is a no-op: a refresh started after Close never
// reaches the gateway, and a result arriving after the view was closed or
// reopened is discarded.
func (v *View[T]) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if !v.open {
		v.mu.Unlock()
		return nil
	}
	gen := v.gen
	v.mu.Unlock()

	items, err := v.fetch(ctx)

	v.mu.Lock()
	stale := !v.open || gen != v.gen
	v.mu.Unlock()
	if stale {
		v.logger.Debug("discarding stale load result",
			zap.String(v.scope.Field, v.scope.Value))
		return nil
	}

	if err != nil {
		v.store.Fail(err)
		return err
	}
	v.store.Replace(items)
	return nil
}

// Close unsubscribes the change feed and invalidates in-flight loads.
// Safe to call more than once.
func (v *View[T]) Close() {
	v.mu.Lock()
	if !v.open {
		v.mu.Unlock()
		return
	}
	v.open = false
	v.gen++
	sub := v.sub
	v.sub = nil
	v.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// Snapshot returns the current items, status and last error.
func (v *View[T]) Snapshot() ([]T, Status, error) {
	return v.store.Snapshot()
}

// pump applies feed events in delivery order until the subscription closes.
func (v *View[T]) pump(sub *feed.Subscription[T]) {
	for event := range sub.Events() {
		switch event.Op {
		case feed.OpInsert:
			if event.Entity != nil {
				v.store.ApplyInsert(*event.Entity)
			}
		case feed.OpUpdate:
			if event.Entity != nil {
				v.store.ApplyUpdate(*event.Entity)
			}
		case feed.OpDelete:
			v.store.ApplyDelete(event.ID)
		}
	}
}

func (v *View[T]) signal() {
	select {
	case v.changes <- struct{}{}:
	default:
	}
}
