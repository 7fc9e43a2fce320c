// Package clock supplies the time sources the conductor reads from.
// The active clock is injected, never reached for as a global: production
// code uses SystemClock, tests use Mock with controllable time.
package clock

import (
	"sync"
	"time"
)

// DefaultKey identifies the local system clock.
const DefaultKey = "local"

// Clock is the active clock descriptor. Now supplies the current instant
// and Key identifies the clock source (e.g. local vs a remote mission clock).
type Clock interface {
	Now() time.Time
	Key() string
}

// SystemClock wraps the system time under a configurable key.
type SystemClock struct {
	key string
}

// NewSystemClock creates a system clock with the default key.
func NewSystemClock() *SystemClock {
	return &SystemClock{key: DefaultKey}
}

// NewSystemClockWithKey creates a system clock identified by the given key.
func NewSystemClockWithKey(key string) *SystemClock {
	if key == "" {
		key = DefaultKey
	}
	return &SystemClock{key: key}
}

// Now returns the current system time.
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// Key returns the clock identifier.
func (c *SystemClock) Key() string {
	return c.key
}

// Mock is a test clock with controllable time.
type Mock struct {
	mu  sync.RWMutex
	now time.Time
	key string
}

// NewMock creates a mock clock set to the given time.
func NewMock(t time.Time) *Mock {
	return &Mock{now: t, key: "mock"}
}

// Now returns the mock time.
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Key returns the clock identifier.
func (m *Mock) Key() string {
	return m.key
}

// Set sets the mock time.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance advances the mock time by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
