// Package render abstracts the drawing surface shared by scenes and HUD widgets.
//
// Components receive a Surface for each Render call instead of reaching into
// a global drawing context. The logical size is fixed for the session.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Align is the horizontal text alignment relative to the anchor point
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// TextStyle describes how DrawText renders a string
type TextStyle struct {
	Size  float64
	Align Align
	Color color.Color
}

// Rect is a destination rectangle in surface units
type Rect struct {
	X, Y, W, H float64
}

// Surface is a fixed-size 2D drawing target
type Surface interface {
	// Size returns the logical width and height
	Size() (w, h int)

	// Fill paints the whole surface
	Fill(clr color.Color)

	// FillRect paints an axis-aligned rectangle
	FillRect(r Rect, clr color.Color)

	// FillCircle paints a circle centred at (cx, cy)
	FillCircle(cx, cy, radius float64, clr color.Color)

	// DrawImage blits the src region of img scaled into dst.
	// A nil img draws nothing.
	DrawImage(img *ebiten.Image, src image.Rectangle, dst Rect)

	// DrawText draws s with its baseline at y, aligned around x
	DrawText(s string, x, y float64, style TextStyle)
}
