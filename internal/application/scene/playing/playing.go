// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/finnshooter/internal/application/hud"
	"github.com/younwookim/finnshooter/internal/application/scene"
	"github.com/younwookim/finnshooter/internal/application/state"
	"github.com/younwookim/finnshooter/internal/application/system"
	"github.com/younwookim/finnshooter/internal/domain/entity"
	"github.com/younwookim/finnshooter/internal/infrastructure/config"
	"github.com/younwookim/finnshooter/internal/infrastructure/render"
	"golang.org/x/image/colornames"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorEnemyHit   = colornames.White
	colorProjectile = colornames.Gold
	colorHint       = colornames.Lightgray
)

const (
	hintText = "WASD move   F fire   mouse aim   Esc pause"
	hintSize = 14

	// gap between the health bar and the top of the sprite
	healthBarGap = 4
)

// Deps are the collaborators of a Playing scene
type Deps struct {
	Config *config.GameConfig
	Clock  entity.Clock
	Rand   *rand.Rand
	Sheet  *ebiten.Image // may be nil

	// Factory builds the pause and goodbye scenes
	Factory scene.Factory
	// Switcher receives the goodbye scene when the character dies
	Switcher scene.Switcher
}

// Playing is the main gameplay scene
type Playing struct {
	config    *config.GameConfig
	character *entity.Character
	healthBar *hud.HealthBar
	combat    *system.CombatSystem

	sheet  *ebiten.Image
	layout render.SheetLayout

	factory  scene.Factory
	switcher scene.Switcher
	over     bool
}

// New creates a new Playing scene with a fresh character
func New(d Deps) *Playing {
	cfg := d.Config
	bounds := entity.NewBounds(cfg.Display.Width, cfg.Display.Height)

	healthBar := hud.NewHealthBar(cfg.Character.Health)
	character := entity.NewCharacter(characterSpec(cfg), bounds, d.Clock, healthBar)

	p := &Playing{
		config:    cfg,
		character: character,
		healthBar: healthBar,
		combat:    system.NewCombatSystem(cfg, bounds, d.Rand),
		sheet:     d.Sheet,
		layout: render.SheetLayout{
			Frames:      cfg.Sprite.Frames,
			FrameWidth:  cfg.Sprite.FrameWidth,
			FrameHeight: cfg.Sprite.FrameHeight,
			PaddingX:    cfg.Sprite.PaddingX,
			PaddingY:    cfg.Sprite.PaddingY,
		},
		factory:  d.Factory,
		switcher: d.Switcher,
	}
	healthBar.Track(p.healthBarAnchor)
	return p
}

func characterSpec(cfg *config.GameConfig) entity.CharacterSpec {
	return entity.CharacterSpec{
		Health:     cfg.Character.Health,
		Damage:     cfg.Character.Damage,
		FireRate:   cfg.Character.FireRate,
		Speed:      cfg.Character.Speed,
		Radius:     cfg.Character.Radius,
		Width:      cfg.Character.Width,
		Height:     cfg.Character.Height,
		ShotWidth:  cfg.Projectile.Width,
		ShotHeight: cfg.Projectile.Height,
	}
}

func (p *Playing) Kind() state.GameState { return state.StatePlaying }

// Enter runs on start and on every resume from pause; the run carries on.
func (p *Playing) Enter() {}

// KeyDown pauses on Escape and forwards every other key to the character
func (p *Playing) KeyDown(key string, sw scene.Switcher) {
	if key == "Escape" {
		sw.SetCurrentScene(p.factory(state.StatePaused, p))
		return
	}
	p.character.KeyDown(key)
}

// KeyUp forwards the release to the character
func (p *Playing) KeyUp(key string, _ scene.Switcher) {
	p.character.KeyUp(key)
}

// PointerMove aims the character
func (p *Playing) PointerMove(x, y float64) {
	p.character.MouseMove(x, y)
}

// Update advances the character, then the playfield around it
func (p *Playing) Update() {
	if p.over {
		return
	}

	p.character.Update()
	p.combat.Update(p.character, p.spriteCenter())

	if p.character.IsDead() {
		p.over = true
		p.switcher.SetCurrentScene(p.factory(state.StateGoodbye, nil))
	}
}

// Render draws the playfield, the health bar, then the character on top
func (p *Playing) Render(s render.Surface) {
	s.Fill(colorBG)

	for _, e := range p.combat.GetEnemies() {
		clr := color.Color(colorEnemy)
		if e.HitTimer > 0 {
			clr = colorEnemyHit
		}
		s.FillCircle(e.Pos.X, e.Pos.Y, e.Radius, clr)
	}

	for _, proj := range p.combat.GetProjectiles() {
		s.FillRect(render.Rect{X: proj.Pos.X, Y: proj.Pos.Y, W: proj.Width, H: proj.Height}, colorProjectile)
	}

	p.healthBar.Render(s)
	s.DrawImage(p.sheet, p.layout.FrameRect(p.character.CurrentFrame()), p.spriteRect())

	_, h := s.Size()
	s.DrawText(hintText, 10, float64(h)-10, render.TextStyle{Size: hintSize, Align: render.AlignStart, Color: colorHint})
	s.DrawText(fmt.Sprintf("Kills %d", p.combat.Kills()), 10, 10+hintSize, render.TextStyle{Size: hintSize, Align: render.AlignStart, Color: colorHint})
}

// spriteRect is where the current frame lands on the surface
func (p *Playing) spriteRect() render.Rect {
	pos := p.character.Position()
	w, h := p.character.Size()
	return render.Rect{
		X: pos.X - p.config.Sprite.OffsetX,
		Y: pos.Y - p.config.Sprite.OffsetY,
		W: w,
		H: h,
	}
}

func (p *Playing) spriteCenter() entity.Vec2 {
	r := p.spriteRect()
	return entity.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (p *Playing) healthBarAnchor() entity.Vec2 {
	r := p.spriteRect()
	return entity.Vec2{X: r.X + r.W/2, Y: r.Y - healthBarGap}
}

// Character returns the played character
func (p *Playing) Character() *entity.Character { return p.character }

// Combat returns the playfield
func (p *Playing) Combat() *system.CombatSystem { return p.combat }

// IsOver reports whether the character died
func (p *Playing) IsOver() bool { return p.over }

var (
	_ scene.Scene          = (*Playing)(nil)
	_ scene.PointerHandler = (*Playing)(nil)
)
