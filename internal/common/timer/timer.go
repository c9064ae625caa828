package timer

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_timer.go github.com/reelcraft/spindle/internal/common/timer Scheduler,Timer

// Scheduler defers a function call by a duration
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled call
type Timer interface {
	// Stop cancels the call if it has not fired yet
	Stop() bool
}

// DefaultScheduler implements the Scheduler interface using time.AfterFunc
type DefaultScheduler struct{}

// Schedule runs fn on its own goroutine after d has elapsed
func (s *DefaultScheduler) Schedule(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
