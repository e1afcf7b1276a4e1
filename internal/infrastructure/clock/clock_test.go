package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWall_NowMillis(t *testing.T) {
	before := time.Now().UnixMilli()
	got := Wall{}.NowMillis()
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

func TestFrame(t *testing.T) {
	f := NewFrame(1_000, 60)
	assert.Equal(t, int64(1_000), f.NowMillis())

	for i := 0; i < 60; i++ {
		f.Step()
	}

	assert.Equal(t, int64(60), f.Ticks())
	assert.Equal(t, int64(2_000), f.NowMillis())
}

func TestFrame_DefaultTPS(t *testing.T) {
	f := NewFrame(0, 0)
	f.Step()

	assert.Equal(t, int64(16), f.NowMillis())
}

func TestManual(t *testing.T) {
	m := &Manual{Now: 500}
	m.Advance(250)

	assert.Equal(t, int64(750), m.NowMillis())
}
