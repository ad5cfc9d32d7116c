package system

import (
	"github.com/elliotchance/orderedmap/v2"
)

// EventKind identifies movement events.
type EventKind string

const (
	EventGroundedChanged  EventKind = "grounded_changed"
	EventJumped           EventKind = "jumped"
	EventDoubleJumped     EventKind = "double_jumped"
	EventDashingChanged   EventKind = "dashing_changed"
	EventCrouchingChanged EventKind = "crouching_changed"
)

// Event is emitted synchronously by the controller during a tick. Value
// carries the new flag for the *_changed kinds and is false otherwise.
type Event struct {
	Kind  EventKind
	Tick  int
	Value bool
}

// Events is the controller's event sink. Subscribers are called in the order
// they subscribed.
type Events struct {
	subs *orderedmap.OrderedMap[string, func(Event)]
}

func NewEvents() *Events {
	return &Events{subs: orderedmap.NewOrderedMap[string, func(Event)]()}
}

// Subscribe registers fn under name. Subscribing again with the same name
// replaces the callback and keeps its place in the order.
func (e *Events) Subscribe(name string, fn func(Event)) {
	if e == nil || fn == nil {
		return
	}
	e.subs.Set(name, fn)
}

// Unsubscribe removes the callback registered under name.
func (e *Events) Unsubscribe(name string) bool {
	if e == nil {
		return false
	}
	return e.subs.Delete(name)
}

// Len returns the number of subscribers.
func (e *Events) Len() int {
	if e == nil {
		return 0
	}
	return e.subs.Len()
}

func (e *Events) emit(evt Event) {
	if e == nil {
		return
	}
	// Copy first so a subscriber may unsubscribe itself.
	fns := make([]func(Event), 0, e.subs.Len())
	for el := e.subs.Front(); el != nil; el = el.Next() {
		fns = append(fns, el.Value)
	}
	for _, fn := range fns {
		fn(evt)
	}
}

// EventQueue is a simple FIFO recorder. Push can be subscribed directly.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
