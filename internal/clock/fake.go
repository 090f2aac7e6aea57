package clock

import (
	"sync"
	"time"
)

// Fake is a Clock whose time only moves when Advance is called. Sleepers
// and tickers are released as virtual time passes them.
type Fake struct {
	mu       sync.Mutex
	now      time.Time
	sleepers []*sleeper
	tickers  []*fakeTicker
}

type sleeper struct {
	until time.Time
	ch    chan struct{}
}

type fakeTicker struct {
	clk      *Fake
	interval time.Duration
	next     time.Time
	ch       chan time.Time
	stopped  bool
}

// NewFake returns a fake clock starting at the given instant.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Sleep blocks until virtual time has advanced past now+d. A non-positive
// duration returns immediately, which lets tests run simulated delays of
// zero without advancing the clock.
func (f *Fake) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	f.mu.Lock()
	s := &sleeper{until: f.now.Add(d), ch: make(chan struct{})}
	f.sleepers = append(f.sleepers, s)
	f.mu.Unlock()
	<-s.ch
}

func (f *Fake) NewTicker(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{
		clk:      f,
		interval: d,
		next:     f.now.Add(d),
		ch:       make(chan time.Time, 1),
	}
	f.tickers = append(f.tickers, t)
	return t
}

// Advance moves virtual time forward, waking due sleepers and firing due
// tickers. Ticker fires coalesce like time.Ticker: at most one pending tick.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	now := f.now

	var remaining []*sleeper
	var woken []*sleeper
	for _, s := range f.sleepers {
		if !s.until.After(now) {
			woken = append(woken, s)
		} else {
			remaining = append(remaining, s)
		}
	}
	f.sleepers = remaining

	for _, t := range f.tickers {
		if t.stopped {
			continue
		}
		for !t.next.After(now) {
			select {
			case t.ch <- t.next:
			default:
			}
			t.next = t.next.Add(t.interval)
		}
	}
	f.mu.Unlock()

	for _, s := range woken {
		close(s.ch)
	}
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() {
	t.clk.mu.Lock()
	defer t.clk.mu.Unlock()
	t.stopped = true
}
