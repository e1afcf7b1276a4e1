package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Bounds is an axis-aligned rectangle, usually the drawing surface.
type Bounds struct {
	X, Y          float64
	Width, Height float64
}

// NewBounds returns bounds anchored at the origin
func NewBounds(width, height int) Bounds {
	return Bounds{Width: float64(width), Height: float64(height)}
}

// Contains reports whether p lies inside the bounds (edges inclusive)
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Center returns the midpoint of the bounds
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// circlesOverlap reports whether two circles intersect
func circlesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.Dist(b) < ra+rb
}
