// Package hud provides on-screen indicators drawn over the playfield.
package hud

import (
	"image/color"

	"github.com/younwookim/finnshooter/internal/domain/entity"
	"github.com/younwookim/finnshooter/internal/infrastructure/render"
	"golang.org/x/image/colornames"
)

// Bar dimensions
const (
	BarWidth  = 50
	BarHeight = 6
)

var (
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorHealthLow  = colornames.Gold
	colorHealthDead = colornames.Crimson
)

// HealthBar is a bar floating above the character.
// It implements entity.HealthIndicator.
type HealthBar struct {
	max    int
	health int

	anchor func() entity.Vec2

	// cached by Update, read by Render
	ratio float64
	at    entity.Vec2
}

// NewHealthBar creates a full bar for a character with max health
func NewHealthBar(max int) *HealthBar {
	return &HealthBar{
		max:    max,
		health: max,
		ratio:  1,
	}
}

// Track sets where the bar is drawn: centred horizontally on the anchor,
// with its bottom edge on it. The anchor is sampled on Update.
func (b *HealthBar) Track(anchor func() entity.Vec2) {
	b.anchor = anchor
}

// UpdateHealth records the latest health value
func (b *HealthBar) UpdateHealth(value int) {
	b.health = value
}

// Update recomputes the fill ratio and samples the anchor
func (b *HealthBar) Update() {
	b.ratio = 0
	if b.max > 0 {
		b.ratio = float64(b.health) / float64(b.max)
	}
	if b.ratio < 0 {
		b.ratio = 0
	}
	if b.ratio > 1 {
		b.ratio = 1
	}

	if b.anchor != nil {
		b.at = b.anchor()
	}
}

// Ratio returns the fill ratio computed by the last Update
func (b *HealthBar) Ratio() float64 { return b.ratio }

// Health returns the last value passed to UpdateHealth
func (b *HealthBar) Health() int { return b.health }

// Render draws the bar at the position sampled by the last Update
func (b *HealthBar) Render(s render.Surface) {
	x := b.at.X - BarWidth/2
	y := b.at.Y - BarHeight

	s.FillRect(render.Rect{X: x, Y: y, W: BarWidth, H: BarHeight}, colorHealthBG)
	if b.ratio <= 0 {
		return
	}
	s.FillRect(render.Rect{X: x, Y: y, W: BarWidth * b.ratio, H: BarHeight}, b.fillColor())
}

func (b *HealthBar) fillColor() color.Color {
	switch {
	case b.ratio > 0.5:
		return colorHealthFG
	case b.ratio > 0.25:
		return colorHealthLow
	default:
		return colorHealthDead
	}
}

var _ entity.HealthIndicator = (*HealthBar)(nil)
