// Package geometry provides 2D primitives and a Delaunay triangulation.
// These are engine-level constructs with no knowledge of rooms or grids.
package geometry

import (
	"fmt"
	"math"
)

// Point is a position or vector in world space
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the Euclidean length of p as a vector
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistSq returns the squared distance between p and q
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Dist returns the distance between p and q
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.DistSq(q))
}

// Normalize returns p scaled to unit length. The zero vector stays zero.
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// IsZero returns true if both components are zero
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// String formats the point as (x, y)
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
