package observable

import "fmt"

// Snapshot is a best-effort, point-in-time view of an entity. Name and
// ObserverCount are read under the entity lock; EventQueueLength is read
// afterwards under the queue's own lock, so the three are not atomic together.
type Snapshot struct {
	ID               string
	Name             string
	ObserverCount    int
	EventQueueLength int
}

// String renders the debug form, e.g.
// Observable { name: "z", observer_count: 0, event_queue_length: 0 }
func (s Snapshot) String() string {
	return fmt.Sprintf("Observable { name: %q, observer_count: %d, event_queue_length: %d }",
		s.Name, s.ObserverCount, s.EventQueueLength)
}

// Snapshot reads a debug view of the entity.
func (h *Handle) Snapshot() (Snapshot, error) {
	snap := Snapshot{ID: h.s.id}
	var q *EventQueue
	err := h.With(func(g *Guard) error {
		snap.Name = g.Name()
		snap.ObserverCount = g.ListenerCount()
		q = g.Events()
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	snap.EventQueueLength = q.Len()
	return snap, nil
}

// String is the debug snapshot text. Errors render in place of the fields.
func (h *Handle) String() string {
	snap, err := h.Snapshot()
	switch {
	case err == nil:
		return snap.String()
	case IsLockPoisoned(err):
		return "Observable { <poisoned> }"
	default:
		return "Observable { <" + err.Error() + "> }"
	}
}
