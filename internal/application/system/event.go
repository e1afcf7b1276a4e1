package system

// Event is one input event delivered to the current scene
type Event interface {
	isEvent()
}

// KeyDownEvent is a key press. Key uses browser-style names: "a", "ArrowUp",
// "Enter", "Escape", " ".
type KeyDownEvent struct {
	Key string
}

func (KeyDownEvent) isEvent() {}

// KeyUpEvent is a key release
type KeyUpEvent struct {
	Key string
}

func (KeyUpEvent) isEvent() {}

// PointerMoveEvent carries the pointer position relative to the surface origin
type PointerMoveEvent struct {
	X, Y float64
}

func (PointerMoveEvent) isEvent() {}

// Point is a pointer position
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Frame is everything polled in one tick
type Frame struct {
	Pointer *Point   `json:"pointer,omitempty"`
	Down    []string `json:"down,omitempty"`
	Up      []string `json:"up,omitempty"`
}

// Empty reports whether the frame carries no input
func (f Frame) Empty() bool {
	return f.Pointer == nil && len(f.Down) == 0 && len(f.Up) == 0
}

// Events returns the frame as ordered events: pointer move, then presses,
// then releases. A key pressed and released within one tick is seen held
// for zero ticks rather than stuck down.
func (f Frame) Events() []Event {
	events := make([]Event, 0, len(f.Down)+len(f.Up)+1)
	if f.Pointer != nil {
		events = append(events, PointerMoveEvent{X: f.Pointer.X, Y: f.Pointer.Y})
	}
	for _, k := range f.Down {
		events = append(events, KeyDownEvent{Key: k})
	}
	for _, k := range f.Up {
		events = append(events, KeyUpEvent{Key: k})
	}
	return events
}

// Source produces one Frame per tick
type Source interface {
	Poll() Frame
}
