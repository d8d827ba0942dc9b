package observable

import "sync"

// QueuedEvent is one (label, payload) pair waiting in an EventQueue.
type QueuedEvent struct {
	Label   string
	Payload Payload
}

// EventQueue is the pending-event buffer of an Observable. It carries its own
// mutex, independent of the entity lock, and is append-only.
type EventQueue struct {
	mu    sync.Mutex
	items []QueuedEvent
}

func newEventQueue() *EventQueue { return &EventQueue{} }

// Push appends an event and returns the new length.
func (q *EventQueue) Push(label string, payload Payload) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, QueuedEvent{Label: label, Payload: payload})
	return len(q.items)
}

func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Items returns a copy of the queued events in insertion order.
func (q *EventQueue) Items() []QueuedEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]QueuedEvent, len(q.items))
	copy(out, q.items)
	return out
}

// ShutdownFlag is a separately locked boolean. It is a placeholder for a
// future dispatch loop; no entry point reads or sets it today.
type ShutdownFlag struct {
	mu        sync.Mutex
	requested bool
}

func newShutdownFlag() *ShutdownFlag { return &ShutdownFlag{} }

func (f *ShutdownFlag) Requested() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requested
}

// Request sets the flag. There is no way to clear it.
func (f *ShutdownFlag) Request() {
	f.mu.Lock()
	f.requested = true
	f.mu.Unlock()
}
