package geometry

import "math"

// degenerateEpsilon is the smallest twice-signed-area treated as a real triangle
const degenerateEpsilon = 1e-12

// Edge is an undirected segment between two points
type Edge struct {
	P Point
	Q Point
}

// Key returns the edge with its endpoints in canonical order, so that
// Edge{a, b}.Key() == Edge{b, a}.Key().
func (e Edge) Key() Edge {
	if e.Q.X < e.P.X || (e.Q.X == e.P.X && e.Q.Y < e.P.Y) {
		return Edge{P: e.Q, Q: e.P}
	}
	return e
}

// Equal reports whether e and o join the same two points in any order
func (e Edge) Equal(o Edge) bool {
	return e.Key() == o.Key()
}

// Triangle is three points in no particular winding
type Triangle struct {
	A Point
	B Point
	C Point
}

// Edges returns AB, BC and CA
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{P: t.A, Q: t.B}, {P: t.B, Q: t.C}, {P: t.C, Q: t.A}}
}

// HasVertex reports whether p is exactly one of the corners
func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

// IsDegenerate reports whether the corners are (nearly) collinear
func (t Triangle) IsDegenerate() bool {
	return math.Abs(t.doubleArea()) < degenerateEpsilon
}

func (t Triangle) doubleArea() float64 {
	return (t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)
}

// Circumcircle returns the center and squared radius of the circle through
// all three corners. ok is false for degenerate triangles.
func (t Triangle) Circumcircle() (center Point, radiusSq float64, ok bool) {
	ax, ay := t.A.X, t.A.Y
	bx, by := t.B.X, t.B.Y
	cx, cy := t.C.X, t.C.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < degenerateEpsilon {
		return Point{}, 0, false
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	center = Point{
		X: (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d,
		Y: (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d,
	}
	return center, center.DistSq(t.A), true
}

// InCircumcircle reports whether p lies strictly inside the circumcircle.
// A degenerate triangle has no finite circumcircle and contains every point.
func (t Triangle) InCircumcircle(p Point) bool {
	center, r2, ok := t.Circumcircle()
	if !ok {
		return true
	}
	return p.DistSq(center) < r2*(1-1e-12)
}
