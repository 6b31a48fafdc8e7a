package world

// Classify replaces every hallway cell with the tile variant matching its
// connected 4-neighbors. A neighbor is connected if it is a Door or any
// hallway cell. Doors, Empty and Blocked cells are left alone. Running it
// again on the same grid changes nothing.
func Classify(g *Grid) {
	variants := make([]CellType, len(g.cells))
	copy(variants, g.cells)

	g.ForEachCell(func(x, y int, t CellType) {
		if !t.IsHallway() {
			return
		}
		var links [4]bool
		for _, dir := range AllDirections() {
			_, _, n := g.Neighbor(x, y, dir)
			links[dir] = n.IsPassage()
		}
		if tile, ok := TileFor(links); ok {
			variants[y*g.width+x] = tile
		}
	})

	g.cells = variants
}

// TileFor maps the connected sides of a hallway cell, indexed by Direction,
// to a tile variant. ok is false when no side is connected.
func TileFor(links [4]bool) (tile CellType, ok bool) {
	n, e, s, w := links[North], links[East], links[South], links[West]

	count := 0
	for _, l := range links {
		if l {
			count++
		}
	}

	switch count {
	case 4:
		return FourWay, true
	case 3:
		switch {
		case !n:
			return ThreeWayNoNorth, true
		case !e:
			return ThreeWayNoEast, true
		case !s:
			return ThreeWayNoSouth, true
		default:
			return ThreeWayNoWest, true
		}
	case 2:
		switch {
		case n && e:
			return TurnNorthEast, true
		case e && s:
			return TurnSouthEast, true
		case s && w:
			return TurnSouthWest, true
		case w && n:
			return TurnNorthWest, true
		case n && s:
			return StraightVertical, true
		default:
			return StraightHorizontal, true
		}
	case 1:
		if n || s {
			return StraightVertical, true
		}
		return StraightHorizontal, true
	}
	return Hallway, false
}
