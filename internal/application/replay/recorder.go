package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/finnshooter/internal/application/system"
)

// ErrEmpty is returned when saving a recording with no ticks
var ErrEmpty = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, startScene string, tps int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:    Version,
			Seed:       seed,
			StartScene: startScene,
			TPS:        tps,
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]FrameInput, 0, 256),
		},
		recording: true,
	}
}

// RecordFrame records a single tick's input
func (r *Recorder) RecordFrame(f system.Frame) {
	if !r.recording {
		return
	}

	if !f.Empty() {
		r.data.Frames = append(r.data.Frames, FrameInput{F: r.data.Ticks, Frame: f})
	}
	r.data.Ticks++
}

// Write encodes the recording as indented JSON
func (r *Recorder) Write(w io.Writer) error {
	if r.data.Ticks == 0 {
		return ErrEmpty
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.data.Ticks == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := r.Write(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded ticks
func (r *Recorder) FrameCount() int {
	return r.data.Ticks
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
