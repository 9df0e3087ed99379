package layout

import "math"

// Bounds is an axis-aligned box in pixel space.
// Every edge is part of the box, so Contains is inclusive.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// NewBounds builds Bounds from two opposite corners in any order.
func NewBounds(x1, y1, x2, y2 float64) Bounds {
	return Bounds{
		Left:   math.Min(x1, x2),
		Top:    math.Min(y1, y2),
		Right:  math.Max(x1, x2),
		Bottom: math.Max(y1, y2),
	}
}

// Width returns Right - Left.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// IsEmpty returns true if the box has no positive extent on either axis.
// NaN edges make a box empty.
func (b Bounds) IsEmpty() bool {
	return !(b.Right > b.Left) || !(b.Bottom > b.Top)
}

// Contains returns true if (x, y) lies inside the box or on one of its edges.
func (b Bounds) Contains(x, y float64) bool {
	return b.ContainsX(x) && b.ContainsY(y)
}

// ContainsX returns true if x lies within [Left, Right].
func (b Bounds) ContainsX(x float64) bool {
	return x >= b.Left && x <= b.Right
}

// ContainsY returns true if y lies within [Top, Bottom].
func (b Bounds) ContainsY(y float64) bool {
	return y >= b.Top && y <= b.Bottom
}

// Center returns the geometric center of the box.
func (b Bounds) Center() Point {
	return Point{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// Intersect returns the overlap of two boxes.
// If they don't overlap, the zero Bounds is returned.
func (b Bounds) Intersect(other Bounds) Bounds {
	out := Bounds{
		Left:   math.Max(b.Left, other.Left),
		Top:    math.Max(b.Top, other.Top),
		Right:  math.Min(b.Right, other.Right),
		Bottom: math.Min(b.Bottom, other.Bottom),
	}
	if out.Right < out.Left || out.Bottom < out.Top {
		return Bounds{}
	}
	return out
}

// Union returns the smallest box containing both boxes.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Left:   math.Min(b.Left, other.Left),
		Top:    math.Min(b.Top, other.Top),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}
