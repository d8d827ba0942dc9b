package observable

import "errors"

// lockPoisonedError signals that a previous holder panicked while holding the
// entity lock. The lock itself is not held when this error is returned.
type lockPoisonedError struct{ id string }

func (e lockPoisonedError) Error() string { return "lock poisoned: " + e.id }

// IsLockPoisoned reports whether err indicates a poisoned entity lock.
func IsLockPoisoned(err error) bool {
	var e lockPoisonedError
	return errors.As(err, &e)
}

// handleReleasedError is returned when a Handle is used after its own Release.
type handleReleasedError struct{ id string }

func (e handleReleasedError) Error() string { return "handle released: " + e.id }

// IsHandleReleased reports whether err indicates use of a released Handle.
func IsHandleReleased(err error) bool {
	var e handleReleasedError
	return errors.As(err, &e)
}
