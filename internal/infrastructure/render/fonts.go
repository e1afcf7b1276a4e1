package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts caches text faces by size over a single font source
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewFonts loads the Go Regular font
func NewFonts() (*Fonts, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Fonts{
		source: s,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face returns the face for size, creating it on first use
func (f *Fonts) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}
