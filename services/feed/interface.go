package feed

import (
	"context"
	"errors"
)

// ErrSubscriptionFailed marks a live subscription that could not be
// established (permission/network). It is reported once per scope
// activation; retry policy belongs to the caller, not this layer.
var ErrSubscriptionFailed = errors.New("change feed subscription failed")

// Op tags a change-feed event.
type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Entity is anything the feed can carry: identified by a stable string ID.
type Entity interface {
	EntityID() string
}

// Event is one remote mutation. Insert and update carry the full entity
// payload; delete carries only the identifier.
type Event[T Entity] struct {
	Op     Op
	ID     string
	Entity *T
}

// Scope is the server-side filter of a subscription: one field/value pair,
// e.g. {user_id, U} for a user's bookings or {service_id, S} for a
// service's reviews.
type Scope struct {
	Field string
	Value string
}

// Subscriber opens at most one live subscription per scope per consumer.
// Events for one scope arrive in transport delivery order; no ordering
// holds across scopes.
type Subscriber[T Entity] interface {
	Subscribe(ctx context.Context, scope Scope) (*Subscription[T], error)
}

// Subscription is a live scoped event stream. Events() is closed after
// Unsubscribe or when the underlying stream ends; no events are delivered
// after Unsubscribe returns the channel to its closed state.
type Subscription[T Entity] struct {
	events chan Event[T]
	cancel context.CancelFunc
	done   chan struct{}
}

// Events returns the subscription's event channel.
func (s *Subscription[T]) Events() <-chan Event[T] {
	return s.events
}

// Unsubscribe releases the transport resource and waits for the event
// channel to close. Safe to call more than once.
func (s *Subscription[T]) Unsubscribe() {
	s.cancel()
	<-s.done
}
