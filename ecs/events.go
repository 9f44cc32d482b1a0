package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// MovementEventKind identifies actor movement events.
type MovementEventKind string

const (
	MovementEventJumped MovementEventKind = "jumped"
	MovementEventLanded MovementEventKind = "landed"
)

// MovementEvent is raised when an actor jumps or is snapped back onto the
// ground.
type MovementEvent struct {
	Entity         Entity
	Kind           MovementEventKind
	JumpsRemaining int
}

// EventQueue is a simple FIFO queue cleared at the end of every tick.
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

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
