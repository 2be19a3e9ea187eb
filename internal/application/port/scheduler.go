package port

import "time"

//go:generate mockgen -source=scheduler.go -destination=mocks/mock_scheduler.go -package=mocks

// TimerHandle identifies a scheduled callback. The zero value is never
// returned by Schedule and means "not armed".
type TimerHandle uint64

// Scheduler runs callbacks after a delay on the caller's event loop.
// Callbacks never run concurrently with each other or with the code
// that scheduled them.
type Scheduler interface {
	// Schedule arms fn to run once after delay.
	Schedule(delay time.Duration, fn func()) TimerHandle

	// Cancel disarms a timer. Cancelling a fired, cancelled or zero
	// handle is a no-op.
	Cancel(h TimerHandle)
}

// VirtualClock is a Scheduler driven by explicit time steps instead of
// the wall clock.
type VirtualClock interface {
	Scheduler

	// Now returns the elapsed virtual time.
	Now() time.Duration

	// AdvanceTo runs every callback due at or before t, in due order,
	// then sets the clock to t.
	AdvanceTo(t time.Duration)
}
