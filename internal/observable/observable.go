package observable

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Observable is the guarded state of a shared named entity. It is only ever
// reached through a Guard, which holds the entity lock.
type Observable struct {
	name      string
	listeners []Listener
	// events and shutdown have their own locks and stay usable after the
	// guard that handed them out is released.
	events   *EventQueue
	shutdown *ShutdownFlag
}

// shared is the block every Handle of one entity points to.
type shared struct {
	id       string
	mu       sync.Mutex // guards ent
	ent      Observable
	poisoned atomic.Bool
	refs     atomic.Int64
	log      zerolog.Logger
	pub      EventPublisher
}

// Config carries construction options. Zero values select defaults: a no-op
// logger and a publisher that drops lifecycle events.
type Config struct {
	Name      string
	Logger    *zerolog.Logger
	Publisher EventPublisher
}

// New constructs an entity named name and returns its first Handle.
// The name is not validated; empty is allowed.
func New(name string) *Handle {
	return NewWithConfig(Config{Name: name})
}

// NewWithConfig constructs an entity from cfg and returns its first Handle.
func NewWithConfig(cfg Config) *Handle {
	s := &shared{
		id: uuid.NewString(),
		ent: Observable{
			name:     cfg.Name,
			events:   newEventQueue(),
			shutdown: newShutdownFlag(),
		},
		log: zerolog.Nop(),
		pub: noopPublisher{},
	}
	if cfg.Logger != nil {
		s.log = cfg.Logger.With().Str("entity", s.id).Logger()
	}
	if cfg.Publisher != nil {
		s.pub = cfg.Publisher
	}
	s.refs.Store(1)
	entitiesLive.Inc()
	handlesLive.Inc()
	s.log.Debug().Str("name", cfg.Name).Msg("entity created")
	s.publish(EventCreated, map[string]any{"name": cfg.Name})
	return &Handle{s: s}
}

func (s *shared) publish(name string, fields map[string]any) {
	s.pub.Publish(Event{Name: name, EntityID: s.id, Fields: fields})
}
