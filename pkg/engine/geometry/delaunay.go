package geometry

// BorderTriangles splits r along its min/min to max/max diagonal. The pair
// seeds BowyerWatson so every inserted point falls inside a bounded face.
func BorderTriangles(r Rect) []Triangle {
	c := r.Corners()
	return []Triangle{
		{A: c[0], B: c[1], C: c[2]},
		{A: c[0], B: c[2], C: c[3]},
	}
}

// BowyerWatson builds a Delaunay triangulation of points by incremental
// insertion into the given border triangles. Points must lie strictly inside
// the border. Duplicate points are inserted once. The result still contains
// triangles touching border vertices; callers filter those out.
func BowyerWatson(points []Point, border []Triangle) []Triangle {
	triangles := make([]Triangle, len(border), len(border)+2*len(points))
	copy(triangles, border)

	inserted := make(map[Point]bool, len(points))

	for _, p := range points {
		if inserted[p] {
			continue
		}
		inserted[p] = true

		// Triangles whose circumcircle contains p form the cavity
		var bad []Triangle
		kept := triangles[:0:0]
		for _, t := range triangles {
			if t.InCircumcircle(p) {
				bad = append(bad, t)
			} else {
				kept = append(kept, t)
			}
		}

		for _, e := range cavityBoundary(bad) {
			kept = append(kept, Triangle{A: e.P, B: e.Q, C: p})
		}
		triangles = kept
	}

	return triangles
}

// cavityBoundary returns the edges used by exactly one of the bad triangles,
// in the order they were first seen.
func cavityBoundary(bad []Triangle) []Edge {
	counts := make(map[Edge]int, len(bad)*3)
	order := make([]Edge, 0, len(bad)*3)
	for _, t := range bad {
		for _, e := range t.Edges() {
			k := e.Key()
			if counts[k] == 0 {
				order = append(order, e)
			}
			counts[k]++
		}
	}

	boundary := order[:0]
	for _, e := range order {
		if counts[e.Key()] == 1 {
			boundary = append(boundary, e)
		}
	}
	return boundary
}

// DropBorder returns the triangles that share no vertex with any corner of r
func DropBorder(triangles []Triangle, r Rect) []Triangle {
	corners := r.Corners()
	result := make([]Triangle, 0, len(triangles))
	for _, t := range triangles {
		touches := false
		for _, c := range corners {
			if t.HasVertex(c) {
				touches = true
				break
			}
		}
		if !touches {
			result = append(result, t)
		}
	}
	return result
}
