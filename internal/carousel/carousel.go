// Package carousel holds the slide index state and the auto-advance timer
// used by the carousel section.
package carousel

import (
	"context"
	"time"
)

const (
	DefaultInterval = 5 * time.Second
	MinInterval     = 3 * time.Second
	MaxInterval     = 20 * time.Second
)

// State is the current slide of a carousel with n slides. Moves wrap around.
type State struct {
	index int
	n     int
}

func New(n int) *State {
	if n < 0 {
		n = 0
	}
	return &State{n: n}
}

func (s *State) Index() int { return s.index }

func (s *State) Len() int { return s.n }

func (s *State) Next() int { return s.GoTo(s.index + 1) }

func (s *State) Prev() int { return s.GoTo(s.index - 1) }

// GoTo moves to slide i modulo the slide count and returns the new index.
func (s *State) GoTo(i int) int {
	if s.n == 0 {
		s.index = 0
		return 0
	}
	s.index = ((i % s.n) + s.n) % s.n
	return s.index
}

// Config mirrors the carousel section settings. Nil fields take defaults:
// auto-advance on, every five seconds.
type Config struct {
	AutoAdvance *bool
	// Interval in seconds, clamped to 3..20.
	Interval *int
}

func (c Config) Enabled() bool {
	return c.AutoAdvance == nil || *c.AutoAdvance
}

func (c Config) Period() time.Duration {
	if c.Interval == nil {
		return DefaultInterval
	}
	d := time.Duration(*c.Interval) * time.Second
	switch {
	case d < MinInterval:
		return MinInterval
	case d > MaxInterval:
		return MaxInterval
	}
	return d
}

// Ticker is the part of time.Ticker Run needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. Tests swap it for a manual one.
type Clock func(d time.Duration) Ticker

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// RealClock backs Run with time.NewTicker.
func RealClock(d time.Duration) Ticker { return realTicker{t: time.NewTicker(d)} }

// Run advances a carousel of n slides once per period and calls onTick with
// the new index. After k ticks the index is k mod n. It returns at once,
// without creating a ticker, when auto-advance is off or there is at most one
// slide; otherwise it runs until ctx is done and stops its ticker.
func Run(ctx context.Context, cfg Config, n int, clock Clock, onTick func(index int)) {
	if !cfg.Enabled() || n <= 1 {
		return
	}
	if clock == nil {
		clock = RealClock
	}
	t := clock(cfg.Period())
	defer t.Stop()

	s := New(n)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			idx := s.Next()
			if onTick != nil {
				onTick(idx)
			}
		}
	}
}
