package world

import (
	"testing"

	"undercroft/pkg/engine/geometry"
)

func TestTileFor(t *testing.T) {
	tests := []struct {
		name       string
		n, e, s, w bool
		want       CellType
	}{
		{"four way", true, true, true, true, FourWay},
		{"no north", false, true, true, true, ThreeWayNoNorth},
		{"no east", true, false, true, true, ThreeWayNoEast},
		{"no south", true, true, false, true, ThreeWayNoSouth},
		{"no west", true, true, true, false, ThreeWayNoWest},
		{"turn NE", true, true, false, false, TurnNorthEast},
		{"turn SE", false, true, true, false, TurnSouthEast},
		{"turn SW", false, false, true, true, TurnSouthWest},
		{"turn NW", true, false, false, true, TurnNorthWest},
		{"vertical", true, false, true, false, StraightVertical},
		{"horizontal", false, true, false, true, StraightHorizontal},
		{"dead end north", true, false, false, false, StraightVertical},
		{"dead end west", false, false, false, true, StraightHorizontal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var links [4]bool
			links[North], links[East], links[South], links[West] = tt.n, tt.e, tt.s, tt.w
			got, ok := TileFor(links)
			if !ok {
				t.Fatal("TileFor() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("TileFor() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, ok := TileFor([4]bool{}); ok {
		t.Error("TileFor(none) ok = true, want false")
	}
}

// A plus-shaped corridor with doors on two arms:
//
//	. H .
//	D H H
//	. H .
func plusGrid() *Grid {
	g := NewGrid(3, 3, geometry.Pt(0, 0), 1)
	g.Set(1, 0, Hallway)
	g.Set(1, 1, Hallway)
	g.Set(1, 2, Hallway)
	g.Set(0, 1, Door)
	g.Set(2, 1, Hallway)
	g.Set(0, 0, Blocked)
	return g
}

func TestClassify(t *testing.T) {
	g := plusGrid()
	Classify(g)

	want := map[Pos]CellType{
		{1, 1}: FourWay,
		{1, 0}: StraightVertical,
		{1, 2}: StraightVertical,
		{2, 1}: StraightHorizontal,
		{0, 1}: Door,
		{0, 0}: Blocked,
		{2, 2}: Empty,
	}
	for p, w := range want {
		if got := g.Get(p.X, p.Y); got != w {
			t.Errorf("cell %v = %v, want %v", p, got, w)
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	g := plusGrid()
	Classify(g)
	once := g.Clone()
	Classify(g)
	if !g.Equal(once) {
		t.Error("second Classify() changed the grid")
	}
}
