package world

import (
	"math"

	"undercroft/pkg/engine/geometry"
)

// Grid is the hallway map: Width x Height square cells of CellSize world
// units, with cell (0, 0) spanning [Origin, Origin+CellSize] on both axes.
type Grid struct {
	cells    []CellType
	width    int
	height   int
	origin   geometry.Point
	cellSize float64
}

// NewGrid creates a grid of Empty cells with the given dimensions
func NewGrid(width, height int, origin geometry.Point, cellSize float64) *Grid {
	g := &Grid{}
	g.Build(width, height, origin, cellSize)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int, origin geometry.Point, cellSize float64) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	if cellSize <= 0 {
		panic("Grid cell size must be positive")
	}

	g.width = width
	g.height = height
	g.origin = origin
	g.cellSize = cellSize
	g.cells = make([]CellType, width*height)
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Origin returns the world position of the grid's min corner
func (g *Grid) Origin() geometry.Point {
	return g.origin
}

// CellSize returns the side length of one cell in world units
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell type at x/y. Out-of-bounds positions read as Blocked.
func (g *Grid) Get(x, y int) CellType {
	if !g.IsValidPosition(x, y) {
		return Blocked
	}
	return g.cells[y*g.width+x]
}

// Set overwrites the cell at x/y. Returns false if out of bounds.
func (g *Grid) Set(x, y int, t CellType) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.cells[y*g.width+x] = t
	return true
}

// Mark upgrades the cell at x/y to t unless it already holds something of
// equal or higher precedence (Door over Hallway over Empty). Blocked cells
// are never marked. Returns true if the cell now holds t's precedence.
func (g *Grid) Mark(x, y int, t CellType) bool {
	cur := g.Get(x, y)
	if cur == Blocked {
		return false
	}
	if t.rank() > cur.rank() {
		g.cells[y*g.width+x] = t
	}
	return true
}

// Neighbor returns the position and type of the adjacent cell in dir
func (g *Grid) Neighbor(x, y int, dir Direction) (nx, ny int, t CellType) {
	dx, dy := dir.Delta()
	nx, ny = x+dx, y+dy
	return nx, ny, g.Get(nx, ny)
}

// CellBounds returns the world-space square covered by cell x/y
func (g *Grid) CellBounds(x, y int) geometry.Rect {
	min := geometry.Point{
		X: g.origin.X + float64(x)*g.cellSize,
		Y: g.origin.Y + float64(y)*g.cellSize,
	}
	return geometry.Rect{Min: min, Max: min.Add(geometry.Point{X: g.cellSize, Y: g.cellSize})}
}

// CellCenter returns the world position of the middle of cell x/y
func (g *Grid) CellCenter(x, y int) geometry.Point {
	return g.CellBounds(x, y).Center()
}

// CellAt returns the cell containing p. Points on a cell boundary belong to
// the cell on their positive side. The result may be out of bounds.
func (g *Grid) CellAt(p geometry.Point) (x, y int) {
	return int(math.Floor((p.X - g.origin.X) / g.cellSize)),
		int(math.Floor((p.Y - g.origin.Y) / g.cellSize))
}

// ForEachCell iterates over all cells row by row, calling fn for each
func (g *Grid) ForEachCell(fn func(x, y int, t CellType)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y*g.width+x])
		}
	}
}

// Count returns how many cells satisfy pred
func (g *Grid) Count(pred func(CellType) bool) int {
	n := 0
	for _, c := range g.cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]CellType, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}

// Equal reports whether both grids have the same shape and cell contents
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
