// Package clock supplies millisecond timestamps to the staking pool. The
// pool only reads time; it never schedules or sleeps, so the interface stays
// a single method.
package clock

import (
	"sync/atomic"
	"time"
)

// Clock yields the current time as milliseconds since the Unix epoch.
type Clock interface {
	NowMS() uint64
}

// System reads the wall clock.
type System struct{}

func (System) NowMS() uint64 {
	return uint64(time.Now().UnixMilli())
}

// Manual is a test clock advanced explicitly by the caller.
type Manual struct {
	now atomic.Uint64
}

// NewManual creates a manual clock starting at the given millisecond
// timestamp.
func NewManual(nowMS uint64) *Manual {
	m := &Manual{}
	m.now.Store(nowMS)
	return m
}

func (m *Manual) NowMS() uint64 {
	return m.now.Load()
}

// Set moves the clock to an absolute timestamp.
func (m *Manual) Set(nowMS uint64) {
	m.now.Store(nowMS)
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.now.Add(uint64(d.Milliseconds()))
}
