package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an *ebiten.Image
type EbitenSurface struct {
	dst   *ebiten.Image
	fonts *Fonts
}

// NewEbitenSurface wraps dst. fonts may be nil, in which case DrawText is a no-op.
func NewEbitenSurface(dst *ebiten.Image, fonts *Fonts) *EbitenSurface {
	return &EbitenSurface{dst: dst, fonts: fonts}
}

// Size returns the bounds of the wrapped image
func (s *EbitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Fill(clr color.Color) {
	s.dst.Fill(clr)
}

func (s *EbitenSurface) FillRect(r Rect, clr color.Color) {
	vector.FillRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (s *EbitenSurface) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), clr, true)
}

func (s *EbitenSurface) DrawImage(img *ebiten.Image, src image.Rectangle, dst Rect) {
	if img == nil || src.Empty() {
		return
	}
	sub, ok := img.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(src.Dx()), dst.H/float64(src.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	s.dst.DrawImage(sub, op)
}

func (s *EbitenSurface) DrawText(str string, x, y float64, style TextStyle) {
	if s.fonts == nil {
		return
	}

	face := s.fonts.Face(style.Size)
	op := &text.DrawOptions{}
	// text.Draw anchors at the top of the line box; move it up to the baseline.
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(style.Color)
	switch style.Align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignEnd:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.dst, str, face, op)
}
