package menu

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/finnshooter/internal/application/scene"
	"github.com/younwookim/finnshooter/internal/application/scene/scenetest"
	"github.com/younwookim/finnshooter/internal/application/state"
	"github.com/younwookim/finnshooter/internal/infrastructure/render"
	"github.com/younwookim/finnshooter/internal/infrastructure/render/rendertest"
)

func newPause(caller scene.Scene) (*Menu, *[]*scenetest.Stub) {
	built := &[]*scenetest.Stub{}
	return NewPause(scenetest.Factory(built), caller), built
}

func TestMenu_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected int
	}{
		{"up wraps to last", []string{"ArrowUp"}, 2},
		{"down", []string{"ArrowDown"}, 1},
		{"down wraps to first", []string{"ArrowDown", "ArrowDown", "ArrowDown"}, 0},
		{"up then down", []string{"ArrowUp", "ArrowDown"}, 0},
		{"other keys ignored", []string{"a", "Escape", "ArrowLeft", " "}, 0},
		{"case matters", []string{"arrowdown", "ENTER"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newPause(nil)
			sw := &scenetest.Switcher{}

			for _, k := range tt.keys {
				m.KeyDown(k, sw)
			}

			assert.Equal(t, tt.expected, m.Current())
			assert.Empty(t, sw.Scenes)
		})
	}
}

func TestMenu_CursorStaysInRange(t *testing.T) {
	m, _ := newPause(nil)
	sw := &scenetest.Switcher{}
	keys := []string{"ArrowUp", "ArrowDown", "ArrowUp", "ArrowUp", "x"}

	for i := 0; i < 500; i++ {
		m.KeyDown(keys[(i*7)%len(keys)], sw)
		require.GreaterOrEqual(t, m.Current(), 0)
		require.Less(t, m.Current(), len(m.Labels()))
	}
}

func TestMenu_KeyUpIsIgnored(t *testing.T) {
	m, _ := newPause(nil)
	sw := &scenetest.Switcher{}

	m.KeyUp("ArrowDown", sw)
	m.KeyUp("Enter", sw)
	m.Update()
	m.Enter()

	assert.Equal(t, 0, m.Current())
	assert.Empty(t, sw.Scenes)
}

func TestPause_ResumeReturnsSameCaller(t *testing.T) {
	caller := &scenetest.Stub{State: state.StatePlaying}
	m, built := newPause(caller)
	sw := &scenetest.Switcher{}

	m.KeyDown("Enter", sw)

	require.Len(t, sw.Scenes, 1)
	assert.Same(t, caller, sw.Last())
	assert.Empty(t, *built, "resume must not construct a scene")
}

func TestPause_OtherOptionsBuildFreshMainMenu(t *testing.T) {
	for _, idx := range []int{1, 2} {
		caller := &scenetest.Stub{State: state.StatePlaying}
		m, built := newPause(caller)
		sw := &scenetest.Switcher{}

		for i := 0; i < idx; i++ {
			m.KeyDown("ArrowDown", sw)
		}
		m.KeyDown("Enter", sw)
		m.KeyDown("Enter", sw)

		require.Len(t, sw.Scenes, 2)
		require.Len(t, *built, 2)
		assert.Equal(t, state.StatePrettyMainMenu, sw.Scenes[0].Kind())
		assert.NotSame(t, sw.Scenes[0], sw.Scenes[1])
		assert.NotSame(t, caller, sw.Scenes[0])
	}
}

func TestMenu_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		build   func(scene.Factory) *Menu
		kind    state.GameState
		title   string
		labels  []string
		targets []state.GameState
	}{
		{
			name:    "main menu",
			build:   NewMainMenu,
			kind:    state.StateMainMenu,
			title:   "MAIN MENU",
			labels:  []string{"Play", "Quit"},
			targets: []state.GameState{state.StatePlaying, state.StateGoodbye},
		},
		{
			name:    "pretty main menu",
			build:   NewPrettyMainMenu,
			kind:    state.StatePrettyMainMenu,
			title:   "FINN",
			labels:  []string{"Start", "Classic menu", "Exit"},
			targets: []state.GameState{state.StatePlaying, state.StateMainMenu, state.StateGoodbye},
		},
		{
			name:    "goodbye",
			build:   NewGoodbye,
			kind:    state.StateGoodbye,
			title:   "GOODBYE !",
			labels:  []string{"Play again", "Main menu", "Quit"},
			targets: []state.GameState{state.StatePlaying, state.StatePrettyMainMenu},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var built []*scenetest.Stub
			m := tt.build(scenetest.Factory(&built))

			assert.Equal(t, tt.kind, m.Kind())
			assert.Equal(t, tt.title, m.Title())
			assert.Equal(t, tt.labels, m.Labels())

			for i, target := range tt.targets {
				sw := &scenetest.Switcher{}
				for m.Current() != i {
					m.KeyDown("ArrowDown", sw)
				}
				m.KeyDown("Enter", sw)

				require.Len(t, sw.Scenes, 1, "option %d", i)
				assert.Equal(t, target, sw.Last().Kind(), "option %d", i)
			}
		})
	}
}

func TestGoodbye_QuitOption(t *testing.T) {
	var built []*scenetest.Stub
	m := NewGoodbye(scenetest.Factory(&built))
	sw := &scenetest.Switcher{}

	m.KeyDown("ArrowUp", sw)
	m.KeyDown("Enter", sw)

	assert.Equal(t, 1, sw.Quits)
	assert.Empty(t, sw.Scenes)
}

func TestMenu_Render(t *testing.T) {
	m, _ := newPause(nil)
	sw := &scenetest.Switcher{}
	m.KeyDown("ArrowDown", sw)
	s := rendertest.New(800, 600)

	m.Render(s)

	texts := s.Texts()
	require.Len(t, texts, 4)

	assert.Equal(t, "PAUSED", texts[0].Text)
	assert.Equal(t, 400.0, texts[0].X)
	assert.Equal(t, 140.0, texts[0].Y)
	assert.Equal(t, 70.0, texts[0].Style.Size)
	assert.Equal(t, render.AlignCenter, texts[0].Style.Align)

	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	green := color.RGBA{R: 0x98, G: 0xc6, B: 0x95, A: 0xff}
	expected := []struct {
		label string
		y     float64
		clr   color.RGBA
	}{
		{"Resume", 330, white},
		{"Config", 375, green},
		{"Main menu", 420, white},
	}
	for i, e := range expected {
		op := texts[i+1]
		assert.Equal(t, e.label, op.Text)
		assert.Equal(t, 400.0, op.X)
		assert.Equal(t, e.y, op.Y)
		assert.Equal(t, 35.0, op.Style.Size)
		assert.Equal(t, e.clr, op.Color)
	}
}

func TestMenu_RenderDoesNotMutate(t *testing.T) {
	m, _ := newPause(nil)
	s := rendertest.New(800, 600)

	m.Render(s)
	m.Render(s)

	assert.Equal(t, 0, m.Current())
	assert.Equal(t, 8, s.Count(rendertest.OpText))
}
