package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SheetLayout describes a horizontal strip of sprite frames
type SheetLayout struct {
	Frames      int
	FrameWidth  int
	FrameHeight int
	PaddingX    int // gap after each frame
	PaddingY    int // rows above the first pixel of every frame
}

// FrameRect returns the source rectangle of frame i
func (l SheetLayout) FrameRect(i int) image.Rectangle {
	x := i * (l.FrameWidth + l.PaddingX)
	return image.Rect(x, l.PaddingY, x+l.FrameWidth, l.PaddingY+l.FrameHeight)
}

// Width returns the total strip width
func (l SheetLayout) Width() int {
	return l.Frames * (l.FrameWidth + l.PaddingX)
}

// Height returns the total strip height
func (l SheetLayout) Height() int {
	return l.PaddingY + l.FrameHeight
}

// NewPlaceholderSheet builds a sprite strip of flat coloured frames.
// Idle frames are blue-ish and walking frames green-ish, with a lighter
// head band so animation steps are visible.
func NewPlaceholderSheet(l SheetLayout) *ebiten.Image {
	sheet := ebiten.NewImage(l.Width(), l.Height())
	for i := 0; i < l.Frames; i++ {
		r := l.FrameRect(i)
		frame, ok := sheet.SubImage(r).(*ebiten.Image)
		if !ok {
			continue
		}
		frame.Fill(placeholderColor(i))

		head := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+r.Dy()/4)
		if band, ok := sheet.SubImage(head).(*ebiten.Image); ok {
			band.Fill(color.RGBA{240, 220, 190, 255})
		}
	}
	return sheet
}

func placeholderColor(i int) color.RGBA {
	shade := uint8(120 + (i%7)*18)
	if i >= 8 {
		return color.RGBA{60, shade, 90, 255}
	}
	return color.RGBA{60, 90, shade, 255}
}
