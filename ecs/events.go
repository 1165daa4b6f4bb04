package ecs

// EventKind identifies event payload types.
type EventKind string

const (
	EventFocusBody   EventKind = "focus_body"
	EventResetView   EventKind = "reset_view"
	EventSpeedChange EventKind = "speed_change"
)

// FocusBodyEvent asks the camera to fly to a body.
type FocusBodyEvent struct {
	Body Entity
}

// SpeedChangeEvent rescales the simulation speed.
type SpeedChangeEvent struct {
	Scale float64
}

// Event is a queued world event.
type Event struct {
	Kind EventKind
	Data any
}

// EventQueue is a per-tick FIFO. Producers (input, HUD, scripts) push
// during Update; consumers read Pending; the scheduler flushes at the
// end of the tick so events never span frames.
type EventQueue struct {
	items []Event
}

// Push adds an event for this tick.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns this tick's events without consuming them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	q.items = nil
}
