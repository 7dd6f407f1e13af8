package engine

import "time"

// GravityClock decides when the current piece falls on its own
// and owns the fall interval that shortens as lines clear
type GravityClock struct {
	initial  time.Duration
	interval time.Duration
	floor    time.Duration
	factor   float64
	lastFall time.Time
}

// NewGravityClock creates a clock whose first automatic fall is due one interval after now
func NewGravityClock(initial, floor time.Duration, factor float64, now time.Time) *GravityClock {
	return &GravityClock{
		initial:  initial,
		interval: initial,
		floor:    floor,
		factor:   factor,
		lastFall: now,
	}
}

// Due reports whether more than one interval has passed since the last fall
func (g *GravityClock) Due(now time.Time) bool {
	return now.Sub(g.lastFall) > g.interval
}

// MarkFall records a fall attempt at now
func (g *GravityClock) MarkFall(now time.Time) {
	g.lastFall = now
}

// SpeedUp shortens the interval by one step while it is above the floor.
// The floor is checked before multiplying, so the result may end slightly under it.
func (g *GravityClock) SpeedUp() {
	if g.interval <= g.floor {
		return
	}
	g.interval = time.Duration(float64(g.interval) * g.factor).Round(time.Microsecond)
}

// Interval returns the current fall interval
func (g *GravityClock) Interval() time.Duration {
	return g.interval
}

// LastFall returns the time of the last fall attempt
func (g *GravityClock) LastFall() time.Time {
	return g.lastFall
}

// Reset restores the initial interval and restarts timing from now
func (g *GravityClock) Reset(now time.Time) {
	g.interval = g.initial
	g.lastFall = now
}
