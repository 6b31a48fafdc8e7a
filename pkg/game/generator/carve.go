package generator

import (
	"errors"
	"fmt"
	"math"

	"undercroft/pkg/engine/geometry"
	"undercroft/pkg/engine/world"
	"undercroft/pkg/game/rooms"
)

// overlapEpsilon keeps cells that only touch a room footprint walkable
const overlapEpsilon = 0.02

var errDoorOutside = errors.New("door cell outside the grid")

// BuildGrid creates the hallway grid covering bounds, blocking every cell
// whose square overlaps a room footprint.
func BuildGrid(arena *rooms.Arena, bounds geometry.Rect, cellSize float64) *world.Grid {
	cols := int(math.Ceil(bounds.Width() / cellSize))
	rows := int(math.Ceil(bounds.Height() / cellSize))
	g := world.NewGrid(cols, rows, bounds.Min, cellSize)

	o := bounds.Min
	for _, r := range arena.Rooms() {
		fp := r.Footprint()
		x0 := int(math.Floor((fp.Min.X-o.X)/cellSize)) - 1
		x1 := int(math.Ceil((fp.Max.X-o.X)/cellSize)) + 1
		y0 := int(math.Floor((fp.Min.Y-o.Y)/cellSize)) - 1
		y1 := int(math.Ceil((fp.Max.Y-o.Y)/cellSize)) + 1
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if g.IsValidPosition(x, y) && g.CellBounds(x, y).Overlaps(fp, overlapEpsilon) {
					g.Set(x, y, world.Blocked)
				}
			}
		}
	}
	return g
}

// DoorCell returns the first grid cell outside the wall the marker faces.
// marker is the absolute position; offset is the same marker relative to the
// room center. The facing axis is measured from the wall, so a marker inside
// the footprint still gets a cell past it; the other axis follows the marker.
func DoorCell(g *world.Grid, t *rooms.Template, marker, offset geometry.Point) world.Pos {
	o := g.Origin()
	size := g.CellSize()
	center := marker.Sub(offset)
	fx := snapIndex((marker.X - o.X) / size)
	fy := snapIndex((marker.Y - o.Y) / size)

	x, y := int(math.Floor(fx)), int(math.Floor(fy))
	switch t.Facing(offset) {
	case rooms.SideWest:
		x = int(math.Floor(snapIndex((center.X-t.Width/2-o.X)/size))) - 1
	case rooms.SideEast:
		x = int(math.Ceil(snapIndex((center.X+t.Width/2-o.X)/size)))
	case rooms.SideSouth:
		y = int(math.Floor(snapIndex((center.Y-t.Height/2-o.Y)/size))) - 1
	case rooms.SideNorth:
		y = int(math.Ceil(snapIndex((center.Y+t.Height/2-o.Y)/size)))
	}
	return world.Pos{X: x, Y: y}
}

// snapIndex removes floating point noise from a fractional cell index that
// should land on a grid line
func snapIndex(f float64) float64 {
	if r := math.Round(f); math.Abs(f-r) < 1e-9 {
		return r
	}
	return f
}

// ExitCell returns the door cell in front of a room's exit
func ExitCell(g *world.Grid, r *rooms.Room) world.Pos {
	return DoorCell(g, r.Template, r.Exit, r.Template.Exit)
}

// EntranceCell returns the door cell in front of a room's entrance
func EntranceCell(g *world.Grid, r *rooms.Room) world.Pos {
	return DoorCell(g, r.Template, r.Entrance, r.Template.Entrance)
}

// CarveHallways runs A* for every edge reachable from start, in breadth-first
// order, from the source room's exit cell to the destination room's entrance
// cell. Path cells are marked Hallway and both ends Door; a Door is never
// downgraded. The first edge without a path fails the whole carve.
func CarveHallways(arena *rooms.Arena, start int, g *world.Grid) ([]Corridor, error) {
	pf := world.NewPathfinder(g)
	var corridors []Corridor

	for _, e := range arena.Edges(start) {
		from := ExitCell(g, arena.Room(e.From))
		to := EntranceCell(g, arena.Room(e.To))

		for _, end := range []world.Pos{from, to} {
			if !g.IsValidPosition(end.X, end.Y) {
				return corridors, unreachable(e, fmt.Errorf("%w: (%d,%d)", errDoorOutside, end.X, end.Y))
			}
		}

		path, err := pf.FindPath(from, to)
		if err != nil {
			return corridors, unreachable(e, err)
		}

		for i, p := range path {
			if i == 0 || i == len(path)-1 {
				g.Mark(p.X, p.Y, world.Door)
			} else {
				g.Mark(p.X, p.Y, world.Hallway)
			}
		}

		corridors = append(corridors, Corridor{
			From:  e.From,
			To:    e.To,
			Cells: append([]world.Pos(nil), path...),
		})
	}
	return corridors, nil
}

func unreachable(e rooms.Edge, err error) *GenerationError {
	ge := newError(StageCarving, KindUnreachableRoomPair, err)
	ge.From, ge.To = e.From, e.To
	return ge
}
