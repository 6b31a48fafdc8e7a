package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"undercroft/pkg/engine/geometry"
	"undercroft/pkg/engine/world"
	"undercroft/pkg/game/rooms"
)

func TestBuildGrid_BlocksFootprint(t *testing.T) {
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4), geometry.Pt(10, 10))
	bounds := LevelBounds(arena, 6)
	require.Equal(t, geometry.Pt(2, 2), bounds.Min)

	g := BuildGrid(arena, bounds, 2)
	assert.Equal(t, 8, g.Width())
	assert.Equal(t, 8, g.Height())
	assert.Equal(t, 4, g.Count(func(c world.CellType) bool { return c == world.Blocked }))
	for _, p := range []world.Pos{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}} {
		assert.Equal(t, world.Blocked, g.Get(p.X, p.Y), "%v", p)
	}
	// touching the wall is not overlapping it
	assert.Equal(t, world.Empty, g.Get(2, 4))
	assert.Equal(t, world.Empty, g.Get(5, 4))
}

func TestBuildGrid_RoundsUp(t *testing.T) {
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4), geometry.Pt(0, 0))
	g := BuildGrid(arena, LevelBounds(arena, 31), 10)
	// bounds are 66 wide: six full cells and one partial
	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 7, g.Height())
}

func TestDoorCell(t *testing.T) {
	tpl := rooms.NewTemplate("cell", 4, 4)
	arena := arenaAt(tpl, geometry.Pt(10, 10))
	g := BuildGrid(arena, LevelBounds(arena, 6), 2)
	r := arena.Room(0)

	assert.Equal(t, world.Pos{X: 2, Y: 4}, EntranceCell(g, r))
	assert.Equal(t, world.Pos{X: 5, Y: 4}, ExitCell(g, r))

	vertical := &rooms.Template{Name: "shaft", Width: 4, Height: 4,
		Entrance: geometry.Pt(0, -2), Exit: geometry.Pt(0, 2)}
	assert.Equal(t, world.Pos{X: 4, Y: 2}, DoorCell(g, vertical, geometry.Pt(10, 8), vertical.Entrance))
	assert.Equal(t, world.Pos{X: 4, Y: 5}, DoorCell(g, vertical, geometry.Pt(10, 12), vertical.Exit))

	// an exit off the grid lines still lands on the first cell past the wall
	assert.Equal(t, world.Pos{X: 6, Y: 4}, DoorCell(g, tpl, geometry.Pt(12.5, 10.5), tpl.Exit))

	// markers inside the footprint step out through the wall they face
	inner := &rooms.Template{Name: "vault", Width: 8, Height: 8,
		Entrance: geometry.Pt(0, -1), Exit: geometry.Pt(2, 0)}
	assert.Equal(t, world.Pos{X: 6, Y: 4}, DoorCell(g, inner, geometry.Pt(12, 10), inner.Exit))
	assert.Equal(t, world.Pos{X: 4, Y: 1}, DoorCell(g, inner, geometry.Pt(10, 9), inner.Entrance))
}

func TestCarveHallways_InteriorMarkers(t *testing.T) {
	vault := &rooms.Template{Name: "vault", Width: 8, Height: 8,
		Entrance: geometry.Pt(-2, 0), Exit: geometry.Pt(2, 0)}
	arena := arenaAt(vault, geometry.Pt(10, 10), geometry.Pt(50, 10))
	arena.Link(0, 1)
	bounds := LevelBounds(arena, 6)
	require.Equal(t, geometry.Pt(0, 0), bounds.Min)
	g := BuildGrid(arena, bounds, 2)

	from := ExitCell(g, arena.Room(0))
	to := EntranceCell(g, arena.Room(1))
	assert.Equal(t, world.Pos{X: 7, Y: 5}, from)
	assert.Equal(t, world.Pos{X: 22, Y: 5}, to)
	require.Equal(t, world.Empty, g.Get(from.X, from.Y))
	require.Equal(t, world.Empty, g.Get(to.X, to.Y))

	corridors, err := CarveHallways(arena, 0, g)
	require.NoError(t, err)
	require.Len(t, corridors, 1)
	cells := corridors[0].Cells
	require.Len(t, cells, 16)
	requireAdjacentSteps(t, cells)
	assert.Equal(t, world.Door, g.Get(7, 5))
	assert.Equal(t, world.Door, g.Get(22, 5))
}

func twoRoomLevel(t *testing.T) (*rooms.Arena, *world.Grid) {
	t.Helper()
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4), geometry.Pt(10, 10), geometry.Pt(30, 10))
	arena.Link(0, 1)
	bounds := LevelBounds(arena, 6)
	require.Equal(t, geometry.Pt(2, 2), bounds.Min)
	return arena, BuildGrid(arena, bounds, 2)
}

func TestCarveHallways_Straight(t *testing.T) {
	arena, g := twoRoomLevel(t)

	corridors, err := CarveHallways(arena, 0, g)
	require.NoError(t, err)
	require.Len(t, corridors, 1)

	c := corridors[0]
	assert.Equal(t, 0, c.From)
	assert.Equal(t, 1, c.To)
	require.Len(t, c.Cells, 8)
	requireAdjacentSteps(t, c.Cells)
	assert.Equal(t, world.Pos{X: 5, Y: 4}, c.Cells[0])
	assert.Equal(t, world.Pos{X: 12, Y: 4}, c.Cells[7])

	assert.Equal(t, world.Door, g.Get(5, 4))
	assert.Equal(t, world.Door, g.Get(12, 4))
	for x := 6; x < 12; x++ {
		assert.Equal(t, world.Hallway, g.Get(x, 4), "x=%d", x)
	}

	world.Classify(g)
	for x := 6; x < 12; x++ {
		assert.Equal(t, world.StraightHorizontal, g.Get(x, 4), "x=%d", x)
	}
	assert.Equal(t, world.Door, g.Get(5, 4))
}

func TestCarveHallways_DoorsSurviveLaterPaths(t *testing.T) {
	tpl := rooms.NewTemplate("cell", 4, 4)
	arena := arenaAt(tpl, geometry.Pt(10, 10), geometry.Pt(30, 10), geometry.Pt(50, 10))
	arena.Link(0, 1)
	arena.Link(0, 2)
	g := BuildGrid(arena, LevelBounds(arena, 6), 2)

	corridors, err := CarveHallways(arena, 0, g)
	require.NoError(t, err)
	require.Len(t, corridors, 2)

	// both corridors leave through room 0's exit door
	assert.Equal(t, corridors[0].Cells[0], corridors[1].Cells[0])
	for _, c := range corridors {
		requireAdjacentSteps(t, c.Cells)
		for _, p := range c.Cells {
			assert.True(t, g.Get(p.X, p.Y).IsPassage(), "%v", p)
		}
		last := c.Cells[len(c.Cells)-1]
		assert.Equal(t, world.Door, g.Get(last.X, last.Y))
	}
	// room 1's entrance door stays a door even if the second path runs through it
	assert.Equal(t, world.Door, g.Get(EntranceCell(g, arena.Room(1)).X, EntranceCell(g, arena.Room(1)).Y))
}

func TestCarveHallways_Walled(t *testing.T) {
	arena, g := twoRoomLevel(t)
	for y := 0; y < g.Height(); y++ {
		g.Set(8, y, world.Blocked)
	}

	_, err := CarveHallways(arena, 0, g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreachableRoomPair)
	assert.ErrorIs(t, err, world.ErrNoPath)

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, StageCarving, ge.Stage)
	assert.Equal(t, 0, ge.From)
	assert.Equal(t, 1, ge.To)
}

func TestCarveHallways_DoorBlockedByNeighbor(t *testing.T) {
	// rooms closer than one cell: the exit door cell lies inside the next room
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4), geometry.Pt(0, 0), geometry.Pt(12, 0))
	arena.Link(0, 1)
	bounds := LevelBounds(arena, 30)
	require.Equal(t, geometry.Pt(-32, -32), bounds.Min)
	g := BuildGrid(arena, bounds, 10)
	require.Equal(t, world.Blocked, g.Get(4, 3))

	corridors, err := CarveHallways(arena, 0, g)
	assert.Empty(t, corridors)
	assert.ErrorIs(t, err, ErrUnreachableRoomPair)
	assert.ErrorIs(t, err, world.ErrBlockedEndpoint)
}

func TestCarveHallways_DoorOutsideGrid(t *testing.T) {
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4), geometry.Pt(0, 0), geometry.Pt(20, 0))
	arena.Link(0, 1)
	// grid ends right at room 1's east wall
	g := BuildGrid(arena, geometry.Rect{Min: geometry.Pt(-10, -10), Max: geometry.Pt(22, 10)}, 2)
	arena.Link(1, 0)

	_, err := CarveHallways(arena, 0, g)
	assert.ErrorIs(t, err, ErrUnreachableRoomPair)
	assert.ErrorIs(t, err, errDoorOutside)
}
