// Package observable implements a shared, lock-protected named entity with a
// listener registry, a pending-event queue and a shutdown flag. It is laid out
// by concern:
//
//   - observable.go: entity state, Config, New/NewWithConfig.
//   - handle.go: Handle (shared reference), ref counting, Acquire/With, poisoning recovery.
//   - guard.go: Guard (exclusive access) and lock poisoning on panic.
//   - snapshot.go: Snapshot and the debug rendering.
//   - queue.go: EventQueue and ShutdownFlag, each with its own lock.
//   - listener.go, payload.go: Listener interface and type-erased payloads.
//   - errors.go: error types and helpers (IsLockPoisoned, IsHandleReleased).
//   - events.go, eventpub_memory.go: lifecycle EventPublisher.
//   - metrics.go: Prometheus collectors.
//
// Listeners and queued events are stored only. Dispatch to listeners, a
// consumer for the queue and a shutdown sequence do not exist yet.
package observable
