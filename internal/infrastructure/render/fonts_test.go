package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFonts_FaceIsCachedPerSize(t *testing.T) {
	f, err := NewFonts()
	require.NoError(t, err)

	a := f.Face(35)
	assert.Same(t, a, f.Face(35))
	assert.NotSame(t, a, f.Face(70))
	assert.Equal(t, 70.0, f.Face(70).Size)
}

func TestEbitenSurface_NilFontsSkipsText(t *testing.T) {
	s := NewEbitenSurface(nil, nil)

	assert.NotPanics(t, func() {
		s.DrawText("GOODBYE !", 10, 10, TextStyle{Size: 70})
	})
}

func TestEbitenSurface_NilImageDrawsNothing(t *testing.T) {
	s := NewEbitenSurface(nil, nil)

	assert.NotPanics(t, func() {
		layout := SheetLayout{Frames: 2, FrameWidth: 20, FrameHeight: 35}
		s.DrawImage(nil, layout.FrameRect(1), Rect{W: 70, H: 100})
	})
}
