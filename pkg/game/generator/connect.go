package generator

import (
	"fmt"

	"go.uber.org/zap"

	"undercroft/pkg/engine/geometry"
	"undercroft/pkg/game/rooms"
)

// LevelBounds returns the union of all room footprints grown by margin, with
// corners rounded outward to whole units so the hallway grid origin is integral.
func LevelBounds(arena *rooms.Arena, margin float64) geometry.Rect {
	return arena.Bounds().Expand(margin).Integral()
}

// ConnectStats reports what BuildConnections did
type ConnectStats struct {
	Triangles        int
	CandidateEdges   int
	LookupMismatches int
}

// BuildConnections triangulates the room centers inside bounds and connects
// every pair of rooms that share a triangle edge. Triangle vertices that match
// no room center exactly are skipped along with their edge.
func BuildConnections(arena *rooms.Arena, bounds geometry.Rect, log *zap.Logger) (ConnectStats, error) {
	var stats ConnectStats
	if log == nil {
		log = zap.NewNop()
	}

	lookup := make(map[geometry.Point]int, arena.Len())
	points := make([]geometry.Point, 0, arena.Len())
	for _, r := range arena.Rooms() {
		if _, dup := lookup[r.Position]; dup {
			continue
		}
		lookup[r.Position] = r.ID
		points = append(points, r.Position)
	}
	if len(points) < 2 {
		return stats, newError(StageConnectivity, KindPlacementDegenerate,
			fmt.Errorf("%d distinct room centers, need at least 2", len(points)))
	}

	triangles := geometry.BowyerWatson(points, geometry.BorderTriangles(bounds))
	triangles = geometry.DropBorder(triangles, bounds)
	stats.Triangles = len(triangles)

	for _, t := range triangles {
		for _, e := range t.Edges() {
			stats.CandidateEdges++
			from, okFrom := lookup[e.P]
			to, okTo := lookup[e.Q]
			if !okFrom || !okTo {
				stats.LookupMismatches++
				log.Debug("triangle vertex matches no room",
					zap.Stringer("p", e.P), zap.Stringer("q", e.Q))
				continue
			}
			arena.Connect(from, to)
		}
	}
	return stats, nil
}

// StartRoom returns the room whose center is nearest the origin, the lowest
// ID winning ties. Returns -1 for an empty arena.
func StartRoom(arena *rooms.Arena) int {
	best := -1
	var bestDist float64
	for _, r := range arena.Rooms() {
		d := r.Position.DistSq(geometry.Point{})
		if best < 0 || d < bestDist {
			best, bestDist = r.ID, d
		}
	}
	return best
}

// LinkIslands connects every room unreachable from start to its nearest
// reachable room, visiting rooms in ascending ID order. Each link brings the
// room's whole component into reach. Returns the number of links added.
func LinkIslands(arena *rooms.Arena, start int) int {
	reachable := arena.Reachable(start)
	links := 0
	for _, r := range arena.Rooms() {
		if reachable.Has(r.ID) {
			continue
		}

		nearest := -1
		var nearestDist float64
		for _, o := range arena.Rooms() {
			if !reachable.Has(o.ID) {
				continue
			}
			d := r.Position.DistSq(o.Position)
			if nearest < 0 || d < nearestDist {
				nearest, nearestDist = o.ID, d
			}
		}
		if nearest < 0 {
			break
		}

		arena.Connect(nearest, r.ID)
		links++
		reachable = arena.Reachable(start)
	}
	return links
}
