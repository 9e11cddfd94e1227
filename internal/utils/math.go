package utils

import "math"

// Point is a canvas-space position in pixels.
type Point struct{ X, Y float64 }

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Size is a canvas extent in pixels.
type Size struct{ W, H float64 }

// Distance returns the euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// InSquare reports whether p lies in the axis-aligned square anchored at
// topLeft. Edges are inclusive.
func InSquare(p, topLeft Point, size float64) bool {
	return InRect(p, topLeft, Size{W: size, H: size})
}

// InRect reports whether p lies in the rectangle anchored at topLeft.
// Edges are inclusive.
func InRect(p, topLeft Point, s Size) bool {
	return topLeft.X <= p.X && p.X <= topLeft.X+s.W &&
		topLeft.Y <= p.Y && p.Y <= topLeft.Y+s.H
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
