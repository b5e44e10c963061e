// Package eventbus provides the in-process publish/subscribe channel used to
// fan solver lifecycle events out to observers (progress reporting, metrics
// collection) without coupling them to the search loop.
package eventbus

import "sync"

// Event is any value published on the bus; see core/events for the solver's
// event types.
type Event any

// Bus is the publish/subscribe contract.
type Bus interface {
	Publish(Event)
	Subscribe() <-chan Event
	Unsubscribe(<-chan Event)
	Close()
}

// subscriberBuffer bounds each subscriber channel. Publish never blocks the
// search loop: events to a full subscriber are dropped.
const subscriberBuffer = 16

// FanOut is the default Bus backed by per-subscriber channels.
type FanOut struct {
	mu     sync.RWMutex
	subs   []chan Event
	closed bool
}

// New creates an empty FanOut bus.
func New() *FanOut { return &FanOut{} }

// Publish delivers e to every subscriber without blocking.
func (b *FanOut) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel. Subscribing
// to a closed bus yields an already-closed channel.
func (b *FanOut) Subscribe() <-chan Event {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

// Unsubscribe removes the subscriber and closes its channel.
func (b *FanOut) Unsubscribe(sub <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, ch := range b.subs {
		if ch == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			if !b.closed {
				close(ch)
			}
			return
		}
	}
}

// Close closes all subscriber channels and rejects further publishes.
func (b *FanOut) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
