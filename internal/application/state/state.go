package state

import "fmt"

// GameState names a scene variant
type GameState int

const (
	StateMainMenu GameState = iota
	StatePrettyMainMenu
	StatePlaying
	StatePaused
	StateGoodbye
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StatePrettyMainMenu:
		return "PrettyMainMenu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGoodbye:
		return "Goodbye"
	default:
		return "Unknown"
	}
}

// Parse maps a config name (main_menu, pretty_main_menu, playing) to the
// scene a session may start in. Paused needs a caller and cannot start a session.
func Parse(name string) (GameState, error) {
	switch name {
	case "main_menu":
		return StateMainMenu, nil
	case "pretty_main_menu":
		return StatePrettyMainMenu, nil
	case "playing":
		return StatePlaying, nil
	case "goodbye":
		return StateGoodbye, nil
	default:
		return 0, fmt.Errorf("unknown start scene %q", name)
	}
}
