// Package clock abstracts wall-clock time so the timer-driven simulation
// loops can run against virtual time in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
	NewTicker(d time.Duration) Ticker
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// New returns a Clock backed by the system clock.
func New() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (t *systemTicker) C() <-chan time.Time { return t.t.C }

func (t *systemTicker) Stop() { t.t.Stop() }
