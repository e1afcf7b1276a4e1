// Package clock provides millisecond time sources for the simulation.
//
// Wall is used for normal play. Frame derives time from the tick count so
// recorded sessions replay with identical cooldown decisions. Manual is for tests.
package clock

import "time"

// Wall reads the system clock
type Wall struct{}

// NowMillis returns the current unix time in milliseconds
func (Wall) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// Frame is a clock that advances a fixed step per tick
type Frame struct {
	start int64
	tick  int64
	tps   int
}

// NewFrame creates a frame clock starting at start ms, ticking tps times per second.
func NewFrame(start int64, tps int) *Frame {
	if tps <= 0 {
		tps = 60
	}
	return &Frame{start: start, tps: tps}
}

// Step advances the clock by one tick
func (f *Frame) Step() {
	f.tick++
}

// Ticks returns the number of ticks stepped so far
func (f *Frame) Ticks() int64 {
	return f.tick
}

// NowMillis returns start plus the elapsed tick time
func (f *Frame) NowMillis() int64 {
	return f.start + f.tick*1000/int64(f.tps)
}

// Manual is a clock set explicitly by the caller
type Manual struct {
	Now int64
}

// NowMillis returns the stored time
func (m *Manual) NowMillis() int64 {
	return m.Now
}

// Advance moves the clock forward by ms
func (m *Manual) Advance(ms int64) {
	m.Now += ms
}
