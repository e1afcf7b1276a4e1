// Package menu provides the keyboard-driven menu scenes.
//
// Every menu is the same scene with different data: a title, a fixed list of
// options and a transition per option. ArrowUp and ArrowDown move the cursor
// with wrap-around; Enter performs the transition of the highlighted option.
package menu

import (
	"image/color"

	"github.com/younwookim/finnshooter/internal/application/scene"
	"github.com/younwookim/finnshooter/internal/application/state"
	"github.com/younwookim/finnshooter/internal/infrastructure/render"
	"golang.org/x/image/colornames"
)

// Layout constants, in surface units
const (
	TitleY        = 140
	TitleSize     = 70
	OptionSize    = 35
	OptionSpacing = 45
	OptionOffsetY = 30
)

var (
	colorText      = colornames.White
	colorHighlight = color.RGBA{R: 0x98, G: 0xc6, B: 0x95, A: 0xff}
)

// Item is one selectable option
type Item struct {
	Label  string
	Target scene.Target
}

// Menu is a title plus a list of options with a cursor
type Menu struct {
	kind    state.GameState
	title   string
	items   []Item
	current int

	// caller is re-entered by a Resume target
	caller  scene.Scene
	factory scene.Factory
}

// New creates a menu. items must not be empty.
func New(kind state.GameState, title string, items []Item, factory scene.Factory, caller scene.Scene) *Menu {
	return &Menu{
		kind:    kind,
		title:   title,
		items:   items,
		factory: factory,
		caller:  caller,
	}
}

// NewMainMenu creates the classic main menu
func NewMainMenu(factory scene.Factory) *Menu {
	return New(state.StateMainMenu, "MAIN MENU", []Item{
		{"Play", scene.SwitchTo(state.StatePlaying)},
		{"Quit", scene.SwitchTo(state.StateGoodbye)},
	}, factory, nil)
}

// NewPrettyMainMenu creates the title screen
func NewPrettyMainMenu(factory scene.Factory) *Menu {
	return New(state.StatePrettyMainMenu, "FINN", []Item{
		{"Start", scene.SwitchTo(state.StatePlaying)},
		{"Classic menu", scene.SwitchTo(state.StateMainMenu)},
		{"Exit", scene.SwitchTo(state.StateGoodbye)},
	}, factory, nil)
}

// NewPause creates the pause menu. Resume re-enters caller itself, not a copy.
func NewPause(factory scene.Factory, caller scene.Scene) *Menu {
	return New(state.StatePaused, "PAUSED", []Item{
		{"Resume", scene.Resume()},
		{"Config", scene.SwitchTo(state.StatePrettyMainMenu)},
		{"Main menu", scene.SwitchTo(state.StatePrettyMainMenu)},
	}, factory, caller)
}

// NewGoodbye creates the end screen
func NewGoodbye(factory scene.Factory) *Menu {
	return New(state.StateGoodbye, "GOODBYE !", []Item{
		{"Play again", scene.SwitchTo(state.StatePlaying)},
		{"Main menu", scene.SwitchTo(state.StatePrettyMainMenu)},
		{"Quit", scene.Quit()},
	}, factory, nil)
}

func (m *Menu) Kind() state.GameState { return m.kind }

func (m *Menu) Enter() {}

func (m *Menu) Update() {}

func (m *Menu) KeyUp(string, scene.Switcher) {}

// KeyDown moves the cursor or performs the highlighted transition
func (m *Menu) KeyDown(key string, sw scene.Switcher) {
	n := len(m.items)
	switch key {
	case "ArrowUp":
		m.current = (m.current - 1 + n) % n
	case "ArrowDown":
		m.current = (m.current + 1) % n
	case "Enter":
		m.items[m.current].Target.Resolve(sw, m.factory, m.caller)
	}
}

// Render draws the title and the options, highlighting the current one
func (m *Menu) Render(s render.Surface) {
	w, h := s.Size()
	cx := float64(w) / 2

	s.DrawText(m.title, cx, TitleY, render.TextStyle{
		Size:  TitleSize,
		Align: render.AlignCenter,
		Color: colorText,
	})

	for i, item := range m.items {
		clr := color.Color(colorText)
		if i == m.current {
			clr = colorHighlight
		}
		y := float64(h)/2 + float64(i*OptionSpacing) + OptionOffsetY
		s.DrawText(item.Label, cx, y, render.TextStyle{
			Size:  OptionSize,
			Align: render.AlignCenter,
			Color: clr,
		})
	}
}

// Current returns the highlighted option index
func (m *Menu) Current() int { return m.current }

// Title returns the menu title
func (m *Menu) Title() string { return m.title }

// Labels returns the option labels in order
func (m *Menu) Labels() []string {
	labels := make([]string, len(m.items))
	for i, item := range m.items {
		labels[i] = item.Label
	}
	return labels
}

// Caller returns the scene a Resume option returns to
func (m *Menu) Caller() scene.Scene { return m.caller }

var _ scene.Scene = (*Menu)(nil)
