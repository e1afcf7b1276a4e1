package entity

import "math"

// Vec2 is an immutable 2D vector in surface units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector of v, or the zero vector when v is zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dist returns the distance between v and o
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Direction is the currently held movement intent. Each axis is -1, 0 or 1.
type Direction struct {
	X, Y int
}

// WithX returns d with the X axis set to the sign of x
func (d Direction) WithX(x int) Direction {
	d.X = sign(x)
	return d
}

// WithY returns d with the Y axis set to the sign of y
func (d Direction) WithY(y int) Direction {
	d.Y = sign(y)
	return d
}

// IsZero reports whether no axis is held
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
