package game

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/younwookim/finnshooter/internal/application/scene"
	"github.com/younwookim/finnshooter/internal/application/scene/menu"
	"github.com/younwookim/finnshooter/internal/application/scene/playing"
	"github.com/younwookim/finnshooter/internal/application/state"
	"github.com/younwookim/finnshooter/internal/domain/entity"
	"github.com/younwookim/finnshooter/internal/infrastructure/config"
)

// Director builds fresh scenes. Its Build method is the scene.Factory
// handed to every scene it creates.
type Director struct {
	config   *config.GameConfig
	clock    entity.Clock
	rng      *rand.Rand
	sheet    *ebiten.Image
	switcher scene.Switcher
	log      zerolog.Logger
}

// NewDirector creates a director. Bind must be called before a Playing
// scene is built.
func NewDirector(cfg *config.GameConfig, clock entity.Clock, rng *rand.Rand, sheet *ebiten.Image, log zerolog.Logger) *Director {
	return &Director{
		config: cfg,
		clock:  clock,
		rng:    rng,
		sheet:  sheet,
		log:    log,
	}
}

// Bind sets the switcher Playing scenes report death to
func (d *Director) Bind(sw scene.Switcher) {
	d.switcher = sw
}

// Build creates a fresh scene of kind. caller is only used by StatePaused.
func (d *Director) Build(kind state.GameState, caller scene.Scene) scene.Scene {
	switch kind {
	case state.StateMainMenu:
		return menu.NewMainMenu(d.Build)
	case state.StatePaused:
		return menu.NewPause(d.Build, caller)
	case state.StateGoodbye:
		return menu.NewGoodbye(d.Build)
	case state.StatePlaying:
		return playing.New(playing.Deps{
			Config:   d.config,
			Clock:    d.clock,
			Rand:     d.rng,
			Sheet:    d.sheet,
			Factory:  d.Build,
			Switcher: d.switcher,
		})
	case state.StatePrettyMainMenu:
		return menu.NewPrettyMainMenu(d.Build)
	default:
		d.log.Warn().Int("kind", int(kind)).Msg("Unknown scene kind, using main menu")
		return menu.NewPrettyMainMenu(d.Build)
	}
}
