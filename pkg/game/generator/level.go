package generator

import (
	"github.com/google/uuid"

	"undercroft/pkg/engine/geometry"
	"undercroft/pkg/engine/world"
	"undercroft/pkg/game/rooms"
)

// Level is the result of one generation run
type Level struct {
	ID    uuid.UUID
	Seed  int64
	Rooms *rooms.Arena

	// Start is the room every other room is reached from
	Start int

	// Bounds covers every room footprint plus the border margin. Its Min is
	// the origin of Grid.
	Bounds geometry.Rect
	Grid   *world.Grid

	// Corridors holds the carved path of each edge in carving order
	Corridors []Corridor

	Stats Stats
}

// Corridor is the carved path for one directed room connection
type Corridor struct {
	From  int
	To    int
	Cells []world.Pos
}

// Stats records what each stage did, for logging and diagnostics
type Stats struct {
	SpreadIterations int
	Triangles        int
	CandidateEdges   int
	// LookupMismatches counts triangle vertices that matched no room center
	LookupMismatches int
	IslandLinks      int
	EdgesBefore      int
	EdgesAfter       int
	LoopsKept        int
	HallwayCells     int
	DoorCells        int
}

// RoomPlacement is handed to a Materializer for each room
type RoomPlacement struct {
	RoomID      int
	Template    *rooms.Template
	Position    geometry.Point
	Orientation float64
	Entrance    geometry.Point
	Exit        geometry.Point
}

// TilePlacement is handed to a Materializer for each hallway or door cell
type TilePlacement struct {
	X, Y     int
	Center   geometry.Point
	CellSize float64
	Tile     world.CellType
}

// Materializer turns a generated level into something concrete: scene
// objects, a map file, a network message.
type Materializer interface {
	PlaceRoom(RoomPlacement) error
	PlaceTile(TilePlacement) error
}

// Materialize sends every room and then every passage cell to m, stopping
// at the first error. Rooms go in ID order and cells row by row from the
// grid origin.
func (l *Level) Materialize(m Materializer) error {
	for _, r := range l.Rooms.Rooms() {
		err := m.PlaceRoom(RoomPlacement{
			RoomID:   r.ID,
			Template: r.Template,
			Position: r.Position,
			Entrance: r.Entrance,
			Exit:     r.Exit,
		})
		if err != nil {
			return err
		}
	}

	for y := 0; y < l.Grid.Height(); y++ {
		for x := 0; x < l.Grid.Width(); x++ {
			t := l.Grid.Get(x, y)
			if !t.IsPassage() {
				continue
			}
			err := m.PlaceTile(TilePlacement{
				X:        x,
				Y:        y,
				Center:   l.Grid.CellCenter(x, y),
				CellSize: l.Grid.CellSize(),
				Tile:     t,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Collector is a Materializer that keeps everything in memory
type Collector struct {
	Rooms []RoomPlacement
	Tiles []TilePlacement
}

// PlaceRoom records the room
func (c *Collector) PlaceRoom(p RoomPlacement) error {
	c.Rooms = append(c.Rooms, p)
	return nil
}

// PlaceTile records the tile
func (c *Collector) PlaceTile(p TilePlacement) error {
	c.Tiles = append(c.Tiles, p)
	return nil
}
