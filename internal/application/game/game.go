// Package game provides the engine that owns the current scene and drives it
// from the ebiten loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/younwookim/finnshooter/internal/application/scene"
	"github.com/younwookim/finnshooter/internal/application/system"
	"github.com/younwookim/finnshooter/internal/infrastructure/render"
)

// FrameRecorder receives every polled frame
type FrameRecorder interface {
	RecordFrame(f system.Frame)
}

// Stepper is a clock advanced once per tick
type Stepper interface {
	Step()
}

// Options configures an Engine
type Options struct {
	Width, Height int
	Source        system.Source
	Fonts         *render.Fonts // nil draws no text
	Logger        zerolog.Logger

	Recorder FrameRecorder // optional
	Clock    Stepper       // optional
}

// Engine implements ebiten.Game and scene.Switcher.
// It holds exactly one current scene.
type Engine struct {
	current scene.Scene
	source  system.Source
	fonts   *render.Fonts
	log     zerolog.Logger

	recorder FrameRecorder
	clock    Stepper

	screenW int
	screenH int
	ticks   int
	quit    bool
}

// New creates an engine with no current scene
func New(opts Options) *Engine {
	return &Engine{
		source:   opts.Source,
		fonts:    opts.Fonts,
		log:      opts.Logger,
		recorder: opts.Recorder,
		clock:    opts.Clock,
		screenW:  opts.Width,
		screenH:  opts.Height,
	}
}

// SetCurrentScene replaces the current scene and enters it
func (e *Engine) SetCurrentScene(s scene.Scene) {
	from := "none"
	if e.current != nil {
		from = e.current.Kind().String()
	}
	e.log.Debug().
		Str("from", from).
		Str("to", s.Kind().String()).
		Int("tick", e.ticks).
		Msg("Scene changed")

	e.current = s
	s.Enter()
}

// Quit makes the next Update end the game
func (e *Engine) Quit() {
	if !e.quit {
		e.log.Info().Int("tick", e.ticks).Msg("Quit requested")
	}
	e.quit = true
}

// Update polls input once, dispatches it and updates the current scene.
// Implements ebiten.Game interface.
func (e *Engine) Update() error {
	if e.quit {
		return ebiten.Termination
	}

	if e.clock != nil {
		e.clock.Step()
	}

	f := e.source.Poll()
	if e.recorder != nil {
		e.recorder.RecordFrame(f)
	}
	e.Dispatch(f.Events())

	if e.current != nil {
		e.current.Update()
	}
	e.ticks++
	return nil
}

// Dispatch delivers events in order. Each event goes to the scene that is
// current when it is delivered, so a key that switches scenes routes the
// following events to the new scene.
func (e *Engine) Dispatch(events []system.Event) {
	for _, ev := range events {
		if e.current == nil {
			return
		}
		switch ev := ev.(type) {
		case system.KeyDownEvent:
			e.current.KeyDown(ev.Key, e)
		case system.KeyUpEvent:
			e.current.KeyUp(ev.Key, e)
		case system.PointerMoveEvent:
			if h, ok := e.current.(scene.PointerHandler); ok {
				h.PointerMove(ev.X, ev.Y)
			}
		}
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (e *Engine) Draw(screen *ebiten.Image) {
	e.Render(render.NewEbitenSurface(screen, e.fonts))
}

// Render draws the current scene onto s
func (e *Engine) Render(s render.Surface) {
	if e.current == nil {
		return
	}
	e.current.Render(s)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (e *Engine) Layout(_, _ int) (int, int) {
	return e.screenW, e.screenH
}

// Current returns the current scene
func (e *Engine) Current() scene.Scene {
	return e.current
}

// Ticks returns the number of completed updates
func (e *Engine) Ticks() int {
	return e.ticks
}

var (
	_ ebiten.Game    = (*Engine)(nil)
	_ scene.Switcher = (*Engine)(nil)
)
