// Package scenetest provides scene test doubles.
package scenetest

import (
	"github.com/younwookim/finnshooter/internal/application/scene"
	"github.com/younwookim/finnshooter/internal/application/state"
	"github.com/younwookim/finnshooter/internal/infrastructure/render"
)

// Switcher records transitions instead of performing them
type Switcher struct {
	Scenes []scene.Scene
	Quits  int
}

func (s *Switcher) SetCurrentScene(next scene.Scene) {
	s.Scenes = append(s.Scenes, next)
}

func (s *Switcher) Quit() {
	s.Quits++
}

// Last returns the most recent scene passed to SetCurrentScene
func (s *Switcher) Last() scene.Scene {
	if len(s.Scenes) == 0 {
		return nil
	}
	return s.Scenes[len(s.Scenes)-1]
}

// Stub is a scene that counts calls and remembers its input
type Stub struct {
	State   state.GameState
	Caller  scene.Scene
	Enters  int
	Updates int
	Renders int
	Downs   []string
	Ups     []string
}

func (s *Stub) Kind() state.GameState              { return s.State }
func (s *Stub) Enter()                             { s.Enters++ }
func (s *Stub) Update()                            { s.Updates++ }
func (s *Stub) Render(render.Surface)              { s.Renders++ }
func (s *Stub) KeyDown(k string, _ scene.Switcher) { s.Downs = append(s.Downs, k) }
func (s *Stub) KeyUp(k string, _ scene.Switcher)   { s.Ups = append(s.Ups, k) }

// Factory returns a scene.Factory that builds Stubs and records each one
func Factory(built *[]*Stub) scene.Factory {
	return func(kind state.GameState, caller scene.Scene) scene.Scene {
		s := &Stub{State: kind, Caller: caller}
		*built = append(*built, s)
		return s
	}
}

var (
	_ scene.Scene    = (*Stub)(nil)
	_ scene.Switcher = (*Switcher)(nil)
)
