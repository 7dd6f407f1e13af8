package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a TimeProvider driven by tests instead of the wall clock.
// Safe for use from the engine goroutine while a test advances it.
type MockTimeProvider struct {
	base   time.Time
	offset atomic.Int64 // nanoseconds past base
}

// NewMockTimeProvider starts the clock at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps to t; earlier times are allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.base)))
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
