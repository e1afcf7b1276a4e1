package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/finnshooter/internal/domain/entity"
	"github.com/younwookim/finnshooter/internal/infrastructure/render"
	"github.com/younwookim/finnshooter/internal/infrastructure/render/rendertest"
	"golang.org/x/image/colornames"
)

func TestHealthBar_Ratio(t *testing.T) {
	tests := []struct {
		name     string
		max      int
		health   int
		expected float64
	}{
		{"full", 100, 100, 1},
		{"half", 100, 50, 0.5},
		{"empty", 100, 0, 0},
		{"negative clamps", 100, -20, 0},
		{"overheal clamps", 100, 150, 1},
		{"zero max", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewHealthBar(tt.max)
			b.UpdateHealth(tt.health)
			b.Update()

			assert.InDelta(t, tt.expected, b.Ratio(), 1e-9)
			assert.Equal(t, tt.health, b.Health())
		})
	}
}

func TestHealthBar_RatioOnlyChangesOnUpdate(t *testing.T) {
	b := NewHealthBar(100)

	b.UpdateHealth(10)
	assert.Equal(t, 1.0, b.Ratio())

	b.Update()
	assert.InDelta(t, 0.1, b.Ratio(), 1e-9)
}

func TestHealthBar_RenderFollowsAnchor(t *testing.T) {
	b := NewHealthBar(100)
	pos := entity.Vec2{X: 200, Y: 100}
	b.Track(func() entity.Vec2 { return pos })
	b.UpdateHealth(40)
	b.Update()

	pos = entity.Vec2{X: 999, Y: 999} // not sampled until the next Update
	s := rendertest.New(800, 600)
	b.Render(s)

	require.Equal(t, []string{rendertest.OpFillRect, rendertest.OpFillRect}, s.Kinds())
	assert.Equal(t, render.Rect{X: 175, Y: 94, W: 50, H: 6}, s.Ops[0].Rect)
	assert.Equal(t, render.Rect{X: 175, Y: 94, W: 20, H: 6}, s.Ops[1].Rect)
	assert.Equal(t, colornames.Gold, s.Ops[1].Color)
}

func TestHealthBar_RenderEmpty(t *testing.T) {
	b := NewHealthBar(100)
	b.UpdateHealth(0)
	b.Update()
	s := rendertest.New(800, 600)

	b.Render(s)

	assert.Equal(t, 1, s.Count(rendertest.OpFillRect))
}

func TestHealthBar_DrivenByCharacter(t *testing.T) {
	b := NewHealthBar(100)
	c := entity.NewCharacter(entity.DefaultCharacterSpec(), entity.NewBounds(800, 600), fixedClock(0), b)

	c.TakeDamage(30)
	c.Update()

	assert.Equal(t, 70, b.Health())
	assert.InDelta(t, 0.7, b.Ratio(), 1e-9)
}

type fixedClock int64

func (c fixedClock) NowMillis() int64 { return int64(c) }
