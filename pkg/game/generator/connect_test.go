package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"undercroft/pkg/engine/geometry"
	"undercroft/pkg/game/rooms"
)

func TestLevelBounds(t *testing.T) {
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4), geometry.Pt(0.5, 0), geometry.Pt(10, 10.25))
	b := LevelBounds(arena, 5)
	assert.Equal(t, geometry.Pt(-7, -7), b.Min)
	assert.Equal(t, geometry.Pt(17, 18), b.Max)
}

func TestBuildConnections_Triangle(t *testing.T) {
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4),
		geometry.Pt(-10, 0), geometry.Pt(10, 0), geometry.Pt(0, 10))

	stats, err := BuildConnections(arena, LevelBounds(arena, 20), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Triangles)
	assert.Equal(t, 3, stats.CandidateEdges)
	assert.Zero(t, stats.LookupMismatches)

	assert.Equal(t, 6, arena.EdgeCount())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				assert.True(t, arena.HasEdge(i, j), "%d -> %d", i, j)
			}
		}
	}
}

func TestBuildConnections_Symmetric(t *testing.T) {
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4),
		geometry.Pt(0, 0), geometry.Pt(30, 5), geometry.Pt(-25, 20),
		geometry.Pt(10, -30), geometry.Pt(-20, -25), geometry.Pt(35, 35))

	_, err := BuildConnections(arena, LevelBounds(arena, 20), nil)
	require.NoError(t, err)
	for _, r := range arena.Rooms() {
		for _, n := range arena.Neighbors(r.ID) {
			assert.True(t, arena.HasEdge(n, r.ID), "%d -> %d has no reverse", r.ID, n)
		}
	}

	start := StartRoom(arena)
	LinkIslands(arena, start)
	assert.Equal(t, arena.Len(), arena.ReachableCount(start))
}

func TestBuildConnections_Degenerate(t *testing.T) {
	tpl := rooms.NewTemplate("cell", 4, 4)
	tests := []struct {
		name  string
		arena *rooms.Arena
	}{
		{"single room", arenaAt(tpl, geometry.Pt(1, 1))},
		{"coincident rooms", arenaAt(tpl, geometry.Pt(1, 1), geometry.Pt(1, 1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildConnections(tt.arena, LevelBounds(tt.arena, 20), nil)
			assert.ErrorIs(t, err, ErrPlacementDegenerate)
		})
	}
}

func TestStartRoom(t *testing.T) {
	tpl := rooms.NewTemplate("cell", 4, 4)
	assert.Equal(t, -1, StartRoom(rooms.NewArena()))
	assert.Equal(t, 2, StartRoom(arenaAt(tpl, geometry.Pt(9, 0), geometry.Pt(0, -8), geometry.Pt(1, 1))))
	assert.Equal(t, 0, StartRoom(arenaAt(tpl, geometry.Pt(5, 0), geometry.Pt(-5, 0), geometry.Pt(0, 6))))
}

func TestLinkIslands_TwoRooms(t *testing.T) {
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4), geometry.Pt(-15, 0), geometry.Pt(15, 3))

	_, err := BuildConnections(arena, LevelBounds(arena, 20), nil)
	require.NoError(t, err)
	assert.Zero(t, arena.EdgeCount())

	start := StartRoom(arena)
	assert.Equal(t, 1, LinkIslands(arena, start))
	assert.True(t, arena.HasEdge(0, 1))
	assert.True(t, arena.HasEdge(1, 0))
}

func TestLinkIslands_Collinear(t *testing.T) {
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4),
		geometry.Pt(-20, 0), geometry.Pt(0, 0), geometry.Pt(20, 0))

	_, err := BuildConnections(arena, LevelBounds(arena, 20), nil)
	require.NoError(t, err)

	start := StartRoom(arena)
	require.Equal(t, 1, start)
	assert.Equal(t, 2, LinkIslands(arena, start))
	assert.True(t, arena.HasEdge(1, 0))
	assert.True(t, arena.HasEdge(1, 2))
	assert.False(t, arena.HasEdge(0, 2))
	assert.Equal(t, 3, arena.ReachableCount(start))
}

func TestLinkIslands_AlreadyConnected(t *testing.T) {
	arena := arenaAt(rooms.NewTemplate("cell", 4, 4), geometry.Pt(0, 0), geometry.Pt(10, 0))
	arena.Connect(0, 1)
	assert.Zero(t, LinkIslands(arena, 0))
}
