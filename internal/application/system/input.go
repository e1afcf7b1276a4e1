package system

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem polls ebiten for key transitions and pointer movement
type InputSystem struct {
	keys []ebiten.Key

	cursorX, cursorY int
	cursorSeen       bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{keys: make([]ebiten.Key, 0, 8)}
}

// Poll reads this tick's key presses and releases. The pointer is reported
// on the first poll and then only when it moved.
func (s *InputSystem) Poll() Frame {
	var f Frame

	mx, my := ebiten.CursorPosition()
	if !s.cursorSeen || mx != s.cursorX || my != s.cursorY {
		s.cursorX, s.cursorY, s.cursorSeen = mx, my, true
		f.Pointer = &Point{X: float64(mx), Y: float64(my)}
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	f.Down = appendKeyNames(f.Down, s.keys)

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	f.Up = appendKeyNames(f.Up, s.keys)

	return f
}

func appendKeyNames(dst []string, keys []ebiten.Key) []string {
	for _, k := range keys {
		dst = append(dst, KeyName(k))
	}
	return dst
}

// KeyName converts an ebiten key to the name scenes match on. Letters are
// lower case, digits are bare and space is " "; every other key keeps its
// ebiten name, e.g. "ArrowUp", "Enter", "Escape".
func KeyName(k ebiten.Key) string {
	name := k.String()
	switch {
	case k == ebiten.KeySpace:
		return " "
	case len(name) == 1:
		return strings.ToLower(name)
	case strings.HasPrefix(name, "Digit") && len(name) == len("Digit")+1:
		return name[len("Digit"):]
	}
	return name
}

var _ Source = (*InputSystem)(nil)
