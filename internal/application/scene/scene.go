// Package scene defines the Scene interface for game screens.
//
// Each screen (menus, playing, pause, goodbye) implements Scene. The engine
// owns the current scene and forwards input to it; scenes change the current
// scene only through the Switcher they are handed.
package scene

import (
	"github.com/younwookim/finnshooter/internal/application/state"
	"github.com/younwookim/finnshooter/internal/infrastructure/render"
)

// Scene represents a game screen
type Scene interface {
	// Kind names the variant, used for logging and tests
	Kind() state.GameState

	// Enter is called every time the scene becomes current
	Enter()

	// Update advances the scene by one tick
	Update()

	// Render draws the scene
	Render(s render.Surface)

	// KeyDown and KeyUp receive key events with names like "a", "ArrowUp",
	// "Enter" or "Escape". Unknown keys are ignored.
	KeyDown(key string, sw Switcher)
	KeyUp(key string, sw Switcher)
}

// PointerHandler is implemented by scenes that track the pointer
type PointerHandler interface {
	PointerMove(x, y float64)
}

// Switcher changes the current scene. The engine implements it.
type Switcher interface {
	// SetCurrentScene replaces the current scene and enters it
	SetCurrentScene(s Scene)

	// Quit ends the session after the current tick
	Quit()
}

// Factory builds a fresh scene of the given kind. caller is the scene a
// Pause returns to and is ignored by every other kind.
type Factory func(kind state.GameState, caller Scene) Scene

// Action is what a transition does
type Action int

const (
	// ActionSwitch enters a fresh scene of Target.Kind
	ActionSwitch Action = iota
	// ActionResume re-enters the stored caller instance
	ActionResume
	// ActionQuit ends the session
	ActionQuit
)

// Target describes a transition
type Target struct {
	Action Action
	Kind   state.GameState
}

// SwitchTo is a transition to a fresh scene of kind
func SwitchTo(kind state.GameState) Target {
	return Target{Action: ActionSwitch, Kind: kind}
}

// Resume is a transition back to the caller
func Resume() Target {
	return Target{Action: ActionResume}
}

// Quit is a transition that ends the session
func Quit() Target {
	return Target{Action: ActionQuit}
}

// Resolve performs the transition on sw. Resuming without a caller does nothing.
func (t Target) Resolve(sw Switcher, factory Factory, caller Scene) {
	switch t.Action {
	case ActionSwitch:
		sw.SetCurrentScene(factory(t.Kind, nil))
	case ActionResume:
		if caller != nil {
			sw.SetCurrentScene(caller)
		}
	case ActionQuit:
		sw.Quit()
	}
}
