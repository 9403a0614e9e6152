package scheduler

import "time"

// Clock supplies the scheduler's notion of current time. All deadline
// arithmetic is done in whole seconds since the Unix epoch, matching the
// resolution alarms are requested in.
type Clock interface {
	Now() time.Time
}

// systemClock reads the wall clock.
type systemClock struct{}

// Now returns the current wall-clock time.
func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the default Clock backed by the wall clock.
//
//nolint:ireturn,nolintlint // Returning the interface keeps the concrete type private.
func SystemClock() Clock {
	return systemClock{}
}
