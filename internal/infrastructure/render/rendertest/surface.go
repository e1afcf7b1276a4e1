// Package rendertest provides a render.Surface that records draw calls.
package rendertest

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/finnshooter/internal/infrastructure/render"
)

// Op kinds recorded by Surface
const (
	OpFill       = "fill"
	OpFillRect   = "rect"
	OpFillCircle = "circle"
	OpImage      = "image"
	OpText       = "text"
)

// Op is one recorded draw call
type Op struct {
	Kind  string
	Text  string
	X, Y  float64
	Rect  render.Rect
	Src   image.Rectangle
	Style render.TextStyle
	Color color.Color
}

// Surface records every call instead of drawing
type Surface struct {
	W, H int
	Ops  []Op
}

// New creates a recording surface of the given size
func New(w, h int) *Surface {
	return &Surface{W: w, H: h}
}

func (s *Surface) Size() (int, int) { return s.W, s.H }

func (s *Surface) Fill(clr color.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpFill, Color: clr})
}

func (s *Surface) FillRect(r render.Rect, clr color.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpFillRect, Rect: r, Color: clr})
}

func (s *Surface) FillCircle(cx, cy, radius float64, clr color.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpFillCircle, X: cx, Y: cy, Rect: render.Rect{W: radius * 2, H: radius * 2}, Color: clr})
}

func (s *Surface) DrawImage(_ *ebiten.Image, src image.Rectangle, dst render.Rect) {
	s.Ops = append(s.Ops, Op{Kind: OpImage, Src: src, Rect: dst})
}

func (s *Surface) DrawText(str string, x, y float64, style render.TextStyle) {
	s.Ops = append(s.Ops, Op{Kind: OpText, Text: str, X: x, Y: y, Style: style, Color: style.Color})
}

// Texts returns the recorded text ops in draw order
func (s *Surface) Texts() []Op {
	return s.filter(OpText)
}

// Kinds returns the kind of every recorded op in draw order
func (s *Surface) Kinds() []string {
	kinds := make([]string, len(s.Ops))
	for i, op := range s.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Count returns how many ops of kind were recorded
func (s *Surface) Count(kind string) int {
	return len(s.filter(kind))
}

// Reset drops all recorded ops
func (s *Surface) Reset() {
	s.Ops = s.Ops[:0]
}

func (s *Surface) filter(kind string) []Op {
	var out []Op
	for _, op := range s.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

var _ render.Surface = (*Surface)(nil)
