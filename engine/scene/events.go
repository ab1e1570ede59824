package scene

import "github.com/google/uuid"

// Event reports a change to the scene's shape collection
type Event struct {
	Type EventType
	ID   uuid.UUID
	Name string
}

type EventType uint8

const (
	EvtShapeAdded EventType = iota
	EvtShapeRemoved
	EvtShapeChanged
)

func (t EventType) String() string {
	switch t {
	case EvtShapeAdded:
		return "added"
	case EvtShapeRemoved:
		return "removed"
	case EvtShapeChanged:
		return "changed"
	}
	return "unknown"
}

// EventBus queues scene events until Dispatch is called
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Dispatch delivers all queued events in order
func (eb *EventBus) Dispatch() {
	for _, e := range eb.queue {
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}
