package generator

import (
	"math"

	"undercroft/pkg/engine/geometry"
	"undercroft/pkg/game/rooms"
)

// AlignToGrid shifts every room so its entrance lies on the nearest grid
// line intersection of a grid with the given origin and cell size. The exit
// moves with the room.
func AlignToGrid(arena *rooms.Arena, origin geometry.Point, cellSize float64) {
	for _, r := range arena.Rooms() {
		rel := r.Entrance.Sub(origin)
		r.Position = r.Position.Add(geometry.Pt(
			snapOffset(rel.X, cellSize),
			snapOffset(rel.Y, cellSize),
		))
		r.Finalize()
	}
}

// snapOffset returns the shift that moves v onto the nearest multiple of size
func snapOffset(v, size float64) float64 {
	return math.Round(v/size)*size - v
}
