package observable

// Event is a lifecycle notification about a shared entity (creation, clones,
// drops, renames, poisoning). These are not the entity's pending events; they
// exist for tests and diagnostics.
type Event struct {
	Name     string
	EntityID string
	Fields   map[string]any
}

// EventPublisher receives lifecycle events. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// Lifecycle event names.
const (
	EventCreated            = "entity_created"
	EventCloned             = "handle_cloned"
	EventReleased           = "handle_released"
	EventDropped            = "entity_dropped"
	EventRenamed            = "name_changed"
	EventPoisoned           = "lock_poisoned"
	EventPoisonCleared      = "poison_cleared"
	EventListenerRegistered = "listener_registered"
	EventEnqueued           = "event_enqueued"
)
