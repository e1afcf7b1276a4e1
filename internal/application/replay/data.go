package replay

import "github.com/younwookim/finnshooter/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// FrameInput records the input polled in a single tick. Ticks without input
// are not stored.
type FrameInput struct {
	F int `json:"f"` // Tick number
	system.Frame
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version    string       `json:"version"`
	Seed       int64        `json:"seed"`
	StartScene string       `json:"startScene"`
	TPS        int          `json:"tps"`
	StartTime  string       `json:"startTime"`
	Ticks      int          `json:"ticks"`
	Frames     []FrameInput `json:"frames"`
}
