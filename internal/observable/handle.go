package observable

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Handle is one shared reference to an entity. All handles of an entity
// observe the same state. Each Handle is released once; the entity is dropped
// when the last one is released.
type Handle struct {
	s        *shared
	released atomic.Bool
}

// ID returns the entity identifier shared by all of its handles.
func (h *Handle) ID() string { return h.s.id }

// Clone returns a new Handle to the same entity and bumps the holder count.
// Cloning a released Handle panics.
func (h *Handle) Clone() *Handle {
	if h.released.Load() {
		panic("observable: Clone of released handle " + h.s.id)
	}
	n := h.s.refs.Add(1)
	handlesLive.Inc()
	h.s.publish(EventCloned, map[string]any{"refs": n})
	return &Handle{s: h.s}
}

// Release drops this holder. It is idempotent per Handle.
func (h *Handle) Release() {
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	n := h.s.refs.Add(-1)
	handlesLive.Dec()
	h.s.publish(EventReleased, map[string]any{"refs": n})
	if n == 0 {
		entitiesLive.Dec()
		h.s.log.Debug().Msg("entity dropped")
		h.s.publish(EventDropped, nil)
	}
}

// RefCount reports the number of live handles at the instant of the call.
func (h *Handle) RefCount() int { return int(h.s.refs.Load()) }

// Poisoned reports whether a holder panicked while holding the lock and the
// poison has not been cleared.
func (h *Handle) Poisoned() bool { return h.s.poisoned.Load() }

// Acquire blocks until the entity lock is free and returns a Guard over the
// entity. The caller must `defer g.Release()` directly so that a panic while
// the lock is held poisons it. If the lock is already poisoned Acquire
// returns an error satisfying IsLockPoisoned and does not hold the lock.
func (h *Handle) Acquire() (*Guard, error) {
	if h.released.Load() {
		lockAcquisitionsTotal.WithLabelValues(resultReleased).Inc()
		return nil, handleReleasedError{id: h.s.id}
	}
	start := time.Now()
	h.s.mu.Lock()
	lockWaitSeconds.Observe(time.Since(start).Seconds())
	if h.s.poisoned.Load() {
		h.s.mu.Unlock()
		lockAcquisitionsTotal.WithLabelValues(resultPoisoned).Inc()
		return nil, lockPoisonedError{id: h.s.id}
	}
	lockAcquisitionsTotal.WithLabelValues(resultOK).Inc()
	return &Guard{s: h.s}, nil
}

// Salvage acquires the lock even when it is poisoned. The poison stays set;
// use ClearPoison once the state has been repaired.
func (h *Handle) Salvage() *Guard {
	h.s.mu.Lock()
	lockAcquisitionsTotal.WithLabelValues(resultSalvaged).Inc()
	if h.s.poisoned.Load() {
		h.s.log.Warn().Msg("salvaging poisoned entity")
	}
	return &Guard{s: h.s}
}

// ClearPoison marks the lock healthy again.
func (h *Handle) ClearPoison() {
	if h.s.poisoned.CompareAndSwap(true, false) {
		h.s.log.Info().Msg("lock poison cleared")
		h.s.publish(EventPoisonCleared, nil)
	}
}

// With runs fn while holding the entity lock. The lock is released on every
// exit path; a panic in fn poisons it and keeps propagating.
func (h *Handle) With(fn func(g *Guard) error) error {
	g, err := h.Acquire()
	if err != nil {
		return err
	}
	defer g.Release()
	return fn(g)
}

// SetName replaces the entity name under exclusive access. Listeners are not
// notified.
func (h *Handle) SetName(name string) error {
	return h.With(func(g *Guard) error {
		g.SetName(name)
		return nil
	})
}

// RegisterListener appends l to the entity's listeners. It is storage only:
// nothing dispatches to listeners yet.
func (h *Handle) RegisterListener(l Listener) error {
	if l == nil {
		return fmt.Errorf("register listener on %s: nil listener", h.s.id)
	}
	return h.With(func(g *Guard) error {
		g.AddListener(l)
		return nil
	})
}

// Enqueue appends (label, v) to the pending-event queue. The queue handle is
// fetched under the entity lock; the push itself only takes the queue lock.
func (h *Handle) Enqueue(label string, v any) error {
	var q *EventQueue
	if err := h.With(func(g *Guard) error {
		q = g.Events()
		return nil
	}); err != nil {
		return err
	}
	n := q.Push(label, NewPayload(v))
	h.s.publish(EventEnqueued, map[string]any{"label": label, "len": n})
	return nil
}
