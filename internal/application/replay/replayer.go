package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/finnshooter/internal/application/system"
)

// Replayer feeds recorded input back one tick per Poll.
// It implements system.Source.
type Replayer struct {
	data ReplayData
	tick int
	next int // index into data.Frames
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadReplay(file)
}

// ReadReplay decodes replay data from r
func ReadReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// Poll returns the input recorded for the current tick and advances.
// Ticks without stored input, and every tick past the end, are empty.
func (r *Replayer) Poll() system.Frame {
	var f system.Frame
	if r.next < len(r.data.Frames) && r.data.Frames[r.next].F == r.tick {
		f = r.data.Frames[r.next].Frame
		r.next++
	}
	r.tick++
	return f
}

// Done reports whether every recorded tick has been played
func (r *Replayer) Done() bool {
	return r.tick >= r.data.Ticks
}

// CurrentFrame returns the current tick number
func (r *Replayer) CurrentFrame() int {
	return r.tick
}

// TotalFrames returns the total number of recorded ticks
func (r *Replayer) TotalFrames() int {
	return r.data.Ticks
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.tick = 0
	r.next = 0
}

var _ system.Source = (*Replayer)(nil)
