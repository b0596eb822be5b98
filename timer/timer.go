package timer

import "time"

// Timer measures the time between its creation (or the instant handed to
// New) and the call to Finish.
type Timer interface {
	// Finish returns the time elapsed since the timer started.
	Finish() time.Duration
	// StartTime returns the instant the timer started.
	StartTime() time.Time
}

type timer struct {
	start time.Time
}

// Start returns a Timer running from now.
func Start() Timer {
	return New(time.Now())
}

// New returns a Timer running from the given instant, for when starting
// from Now isn't quite right.
func New(start time.Time) Timer {
	return timer{start: start}
}

func (t timer) Finish() time.Duration {
	return time.Since(t.start)
}

func (t timer) StartTime() time.Time {
	return t.start
}
