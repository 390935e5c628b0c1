package feed

import "sync"

// NewManualSubscription returns an in-process subscription fed by the
// caller through the returned channel. Closing the channel or calling
// Unsubscribe ends delivery. Used by in-memory transports and fakes.
func NewManualSubscription[T Entity](buffer int) (*Subscription[T], chan<- Event[T]) {
	in := make(chan Event[T], buffer)
	stop := make(chan struct{})
	var once sync.Once

	sub := &Subscription[T]{
		events: make(chan Event[T], buffer),
		cancel: func() { once.Do(func() { close(stop) }) },
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		defer close(sub.events)
		for {
			select {
			case event, ok := <-in:
				if !ok {
					return
				}
				select {
				case sub.events <- event:
				case <-stop:
					return
				}
			case <-stop:
				return
			}
		}
	}()

	return sub, in
}
