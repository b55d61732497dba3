package ecs

import "github.com/milk9111/topdown/ecs/component"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventClipSwapped = "clip_swapped"

// ClipSwap is the payload of an EventClipSwapped event.
type ClipSwap struct {
	Entity Entity
	Sheet  component.SheetHandle
	First  uint
}

// EventQueue is a simple FIFO queue.
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

// Len reports how many events are queued.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
