package observable

import "fmt"

// Guard is exclusive access to an entity. It is valid until Release.
type Guard struct {
	s    *shared
	done bool
}

// Release unlocks the entity. It must be deferred directly (defer g.Release())
// so it can see a panic unwinding through the critical section; in that case
// the lock is poisoned before it is unlocked and the panic continues.
func (g *Guard) Release() {
	if g.done {
		return
	}
	g.done = true
	if r := recover(); r != nil {
		g.s.poison(r)
		g.s.mu.Unlock()
		panic(r)
	}
	g.s.mu.Unlock()
}

func (g *Guard) held() *Observable {
	if g.done {
		panic("observable: guard used after Release")
	}
	return &g.s.ent
}

func (g *Guard) ID() string { return g.s.id }

func (g *Guard) Name() string { return g.held().name }

// SetName replaces the name unconditionally.
func (g *Guard) SetName(name string) {
	ent := g.held()
	old := ent.name
	ent.name = name
	g.s.log.Debug().Str("old", old).Str("new", name).Msg("entity renamed")
	g.s.publish(EventRenamed, map[string]any{"old": old, "new": name})
}

// Listeners returns a copy of the registered listeners in insertion order.
func (g *Guard) Listeners() []Listener {
	ent := g.held()
	out := make([]Listener, len(ent.listeners))
	copy(out, ent.listeners)
	return out
}

func (g *Guard) ListenerCount() int { return len(g.held().listeners) }

// AddListener appends l. Duplicates are kept.
func (g *Guard) AddListener(l Listener) {
	ent := g.held()
	ent.listeners = append(ent.listeners, l)
	g.s.publish(EventListenerRegistered, map[string]any{"count": len(ent.listeners)})
}

// Events returns the entity's pending-event queue.
func (g *Guard) Events() *EventQueue { return g.held().events }

// Shutdown returns the entity's shutdown flag.
func (g *Guard) Shutdown() *ShutdownFlag { return g.held().shutdown }

// poison is called with mu held.
func (s *shared) poison(r any) {
	s.poisoned.Store(true)
	poisoningsTotal.Inc()
	s.log.Error().Str("panic", fmt.Sprint(r)).Msg("lock poisoned by panicking holder")
	s.publish(EventPoisoned, map[string]any{"panic": fmt.Sprint(r)})
}
