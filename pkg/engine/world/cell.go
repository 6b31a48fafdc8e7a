// Package world provides the hallway grid: a fixed-size 2D array of typed
// cells, A* search across it, and classification of carved cells into
// directional tile variants.
package world

// CellType is the content of one hallway grid cell
type CellType int

// Cell types. Everything from Hallway on is part of the corridor network;
// the variants after Door are produced by Classify.
const (
	Empty CellType = iota
	Blocked
	Hallway
	Door
	StraightHorizontal
	StraightVertical
	TurnNorthEast
	TurnSouthEast
	TurnSouthWest
	TurnNorthWest
	ThreeWayNoNorth
	ThreeWayNoEast
	ThreeWayNoSouth
	ThreeWayNoWest
	FourWay
)

var cellTypeNames = map[CellType]string{
	Empty:              "Empty",
	Blocked:            "Blocked",
	Hallway:            "Hallway",
	Door:               "Door",
	StraightHorizontal: "StraightHorizontal",
	StraightVertical:   "StraightVertical",
	TurnNorthEast:      "TurnNorthEast",
	TurnSouthEast:      "TurnSouthEast",
	TurnSouthWest:      "TurnSouthWest",
	TurnNorthWest:      "TurnNorthWest",
	ThreeWayNoNorth:    "ThreeWayNoNorth",
	ThreeWayNoEast:     "ThreeWayNoEast",
	ThreeWayNoSouth:    "ThreeWayNoSouth",
	ThreeWayNoWest:     "ThreeWayNoWest",
	FourWay:            "FourWay",
}

// String returns the name of the cell type
func (c CellType) String() string {
	if name, ok := cellTypeNames[c]; ok {
		return name
	}
	return "Unknown"
}

// IsHallway returns true for unclassified and classified hallway cells, not doors
func (c CellType) IsHallway() bool {
	return c == Hallway || c >= StraightHorizontal && c <= FourWay
}

// IsPassage returns true if the cell is part of the carved corridor network
func (c CellType) IsPassage() bool {
	return c == Door || c.IsHallway()
}

// IsWalkable returns true if a path search may enter the cell
func (c CellType) IsWalkable() bool {
	return c != Blocked
}

// rank orders cell types for marking: a higher rank is never overwritten
// by a lower one.
func (c CellType) rank() int {
	switch {
	case c == Door:
		return 2
	case c.IsHallway():
		return 1
	default:
		return 0
	}
}
