package geometry

import "math"

// Rect is an axis-aligned rectangle. Min holds the smallest coordinates.
type Rect struct {
	Min Point
	Max Point
}

// RectAround returns the rectangle of the given size centered on c
func RectAround(c Point, width, height float64) Rect {
	return Rect{
		Min: Point{X: c.X - width/2, Y: c.Y - height/2},
		Max: Point{X: c.X + width/2, Y: c.Y + height/2},
	}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Union returns the smallest rectangle containing r and o
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Expand grows the rectangle by margin on every side
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - margin, Y: r.Min.Y - margin},
		Max: Point{X: r.Max.X + margin, Y: r.Max.Y + margin},
	}
}

// Integral returns the rectangle with Min floored and Max ceiled,
// so the result always contains r.
func (r Rect) Integral() Rect {
	return Rect{
		Min: Point{X: math.Floor(r.Min.X), Y: math.Floor(r.Min.Y)},
		Max: Point{X: math.Ceil(r.Max.X), Y: math.Ceil(r.Max.Y)},
	}
}

// Corners returns the four corners: min/min, min/max, max/max, max/min
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Min.Y},
	}
}

// Contains reports whether p lies strictly inside r
func (r Rect) Contains(p Point) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether the open interiors of r and o intersect by more
// than eps on both axes. Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect, eps float64) bool {
	return o.Max.X-r.Min.X > eps && r.Max.X-o.Min.X > eps &&
		o.Max.Y-r.Min.Y > eps && r.Max.Y-o.Min.Y > eps
}
