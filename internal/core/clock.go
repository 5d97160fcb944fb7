package core

import "time"

// Ticker is a fixed-rate clock layered on top of the simulation step.
// It fires at most once per Due call; missed periods are dropped
// rather than replayed in a burst.
type Ticker struct {
	interval time.Duration
	next     time.Duration
}

// NewTicker creates a ticker that first fires one interval after start.
func NewTicker(interval time.Duration, start time.Duration) *Ticker {
	t := &Ticker{interval: interval}
	t.Reset(start)
	return t
}

// Reset restarts the period at now.
func (t *Ticker) Reset(now time.Duration) {
	t.next = now + t.interval
}

// Due reports whether a period has elapsed by now and advances the clock.
func (t *Ticker) Due(now time.Duration) bool {
	if now < t.next {
		return false
	}
	t.next += t.interval
	if t.next <= now {
		t.next = now + t.interval
	}
	return true
}
