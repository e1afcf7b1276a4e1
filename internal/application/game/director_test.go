package game

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/finnshooter/internal/application/scene/menu"
	"github.com/younwookim/finnshooter/internal/application/scene/playing"
	"github.com/younwookim/finnshooter/internal/application/state"
	"github.com/younwookim/finnshooter/internal/application/system"
	"github.com/younwookim/finnshooter/internal/infrastructure/clock"
	"github.com/younwookim/finnshooter/internal/infrastructure/config"
)

func newDirector() *Director {
	return NewDirector(config.Default(), &clock.Manual{Now: 10_000}, rand.New(rand.NewSource(1)), nil, zerolog.Nop())
}

func TestDirector_BuildsEveryKind(t *testing.T) {
	d := newDirector()
	kinds := []state.GameState{
		state.StateMainMenu,
		state.StatePrettyMainMenu,
		state.StatePlaying,
		state.StatePaused,
		state.StateGoodbye,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := d.Build(kind, nil)
			require.NotNil(t, s)
			assert.Equal(t, kind, s.Kind())
		})
	}
}

func TestDirector_BuildIsAlwaysFresh(t *testing.T) {
	d := newDirector()

	assert.NotSame(t, d.Build(state.StatePlaying, nil), d.Build(state.StatePlaying, nil))
}

func TestDirector_PauseKeepsCaller(t *testing.T) {
	d := newDirector()
	p := d.Build(state.StatePlaying, nil)

	pause, ok := d.Build(state.StatePaused, p).(*menu.Menu)
	require.True(t, ok)
	assert.Same(t, p, pause.Caller())
}

func TestDirector_UnknownKindFallsBackToTitle(t *testing.T) {
	d := newDirector()

	assert.Equal(t, state.StatePrettyMainMenu, d.Build(state.GameState(42), nil).Kind())
}

// Full loop: title screen -> play -> pause -> resume the same run -> die -> goodbye -> quit.
func TestEngine_SessionFlow(t *testing.T) {
	d := newDirector()
	src := &fakeSource{}
	e := New(Options{Width: 800, Height: 600, Source: src, Logger: zerolog.Nop()})
	d.Bind(e)
	e.SetCurrentScene(d.Build(state.StatePrettyMainMenu, nil))

	press := func(keys ...string) {
		src.frames = append(src.frames, system.Frame{Down: keys})
		require.NoError(t, e.Update())
	}

	press("Enter")
	run, ok := e.Current().(*playing.Playing)
	require.True(t, ok, "Start opens a playing scene")

	press("d")
	press("Escape")
	assert.Equal(t, state.StatePaused, e.Current().Kind())

	press("Enter")
	assert.Same(t, run, e.Current(), "Resume returns to the paused run")
	assert.Equal(t, 1, run.Character().Direction().X)

	run.Character().TakeDamage(run.Character().Health())
	press()
	assert.Equal(t, state.StateGoodbye, e.Current().Kind())

	press("ArrowUp")
	press("Enter")
	assert.ErrorIs(t, e.Update(), ebiten.Termination)
}
