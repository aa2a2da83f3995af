// Package clock provides an abstraction for time operations to improve testability.
// The overdue filter and the incomplete-tab semantics depend on "today at local
// midnight", so code uses the Clock interface instead of calling time.Now()
// directly and tests pin the day with a fixed clock.
package clock

import "time"

// Clock is an interface for time operations.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}

// FixedClock is a Clock that always returns the same instant.
// Used by tests to make due-date comparisons deterministic.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (f FixedClock) Now() time.Time {
	return f.Time
}

// Ensure FixedClock implements Clock.
var _ Clock = FixedClock{}
