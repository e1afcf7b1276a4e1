package entity

// Cadence advances a sprite frame index every Every ticks, cycling through
// Span frames starting at Base.
type Cadence struct {
	Every int
	Span  int
	Base  int
}

var (
	// MovingCadence cycles frames 8..14, one step every 8 ticks
	MovingCadence = Cadence{Every: 8, Span: 7, Base: 8}
	// IdleCadence cycles frames 0..8, one step every 15 ticks
	IdleCadence = Cadence{Every: 15, Span: 9, Base: 0}
)

// Next returns the frame to show after a tick at counter.
// The frame is unchanged unless counter falls on the cadence.
// The input frame is not normalised into the cadence range first, so the
// first step after switching cadences is computed from the old index.
func (c Cadence) Next(frame, counter int) int {
	if counter%c.Every != 0 {
		return frame
	}
	return (frame+1)%c.Span + c.Base
}
