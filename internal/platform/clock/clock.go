// Package clock provides the time sources used for quote-of-the-day dates.
package clock

import (
	"fmt"
	"sync"
	"time"
)

// Zoned reports the current time in a fixed location.
type Zoned struct {
	loc *time.Location
}

// New returns a clock for the IANA zone name tz. An empty name uses the
// process local zone.
func New(tz string) (*Zoned, error) {
	if tz == "" {
		return &Zoned{loc: time.Local}, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", tz, err)
	}

	return &Zoned{loc: loc}, nil
}

// Local returns a clock in the process local zone.
func Local() *Zoned {
	return &Zoned{loc: time.Local}
}

// Now returns the current time in the clock's location.
func (z *Zoned) Now() time.Time {
	return time.Now().In(z.loc)
}

// Location returns the clock's location.
func (z *Zoned) Location() *time.Location {
	return z.loc
}

// Manual is a settable clock for tests and tooling.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a clock stopped at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
