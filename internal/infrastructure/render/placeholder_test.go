package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSheetLayout_FrameRect(t *testing.T) {
	l := SheetLayout{Frames: 15, FrameWidth: 20, FrameHeight: 35, PaddingX: 12, PaddingY: 2}

	tests := []struct {
		frame int
		want  image.Rectangle
	}{
		{0, image.Rect(0, 2, 20, 37)},
		{1, image.Rect(32, 2, 52, 37)},
		{10, image.Rect(320, 2, 340, 37)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, l.FrameRect(tt.frame))
	}

	assert.Equal(t, 480, l.Width())
	assert.Equal(t, 37, l.Height())
}

func TestPlaceholderColor_SplitsIdleAndMoving(t *testing.T) {
	idle := placeholderColor(3)
	moving := placeholderColor(10)

	assert.Equal(t, uint8(60), idle.R)
	assert.Greater(t, idle.B, idle.G)
	assert.Greater(t, moving.G, moving.B)
}
