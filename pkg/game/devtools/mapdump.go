// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"undercroft/pkg/engine/world"
	"undercroft/pkg/game/generator"
)

// DefaultDumpFilename is where DumpLevelToFile writes when given no path
const DefaultDumpFilename = "level.txt"

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(t world.CellType) rune {
	switch {
	case t == world.Blocked:
		return '#'
	case t == world.Door:
		return 'D'
	case t == world.FourWay:
		return '+'
	case t >= world.ThreeWayNoNorth && t <= world.ThreeWayNoWest:
		return 'T'
	case t >= world.TurnNorthEast && t <= world.TurnNorthWest:
		return 'L'
	case t == world.StraightHorizontal:
		return '-'
	case t == world.StraightVertical:
		return '|'
	case t == world.Hallway:
		return 'h'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid with the highest row first
func writeMapGrid(w io.Writer, g *world.Grid) {
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			fmt.Fprintf(w, "%c", cellSymbol(g.Get(x, y)))
		}
		fmt.Fprintln(w)
	}
}

// DumpLevel writes a full debug dump of lvl: metadata, legend, map, rooms
// and hallways. Format is human-readable (sections, key: value).
func DumpLevel(w io.Writer, lvl *generator.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no grid")
	}

	bw := bufio.NewWriter(w)
	g := lvl.Grid

	// --- Metadata ---
	fmt.Fprintln(bw, "=== LEVEL DUMP (rooms, connections, hallways) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "level_id: %s\n", lvl.ID)
	fmt.Fprintf(bw, "seed: %d\n", lvl.Seed)
	fmt.Fprintf(bw, "grid_cols: %d\n", g.Width())
	fmt.Fprintf(bw, "grid_rows: %d\n", g.Height())
	fmt.Fprintf(bw, "cell_size: %g\n", g.CellSize())
	fmt.Fprintf(bw, "grid_origin: %g,%g\n", g.Origin().X, g.Origin().Y)
	fmt.Fprintln(bw, "coordinate_system: x,y (0-based cells, y grows north; top map line is the highest row)")
	fmt.Fprintf(bw, "bounds: %g,%g .. %g,%g\n", lvl.Bounds.Min.X, lvl.Bounds.Min.Y, lvl.Bounds.Max.X, lvl.Bounds.Max.Y)
	fmt.Fprintf(bw, "start_room: %d\n", lvl.Start)
	fmt.Fprintf(bw, "spread_iterations: %d\n", lvl.Stats.SpreadIterations)
	fmt.Fprintf(bw, "triangles: %d\n", lvl.Stats.Triangles)
	fmt.Fprintf(bw, "lookup_mismatches: %d\n", lvl.Stats.LookupMismatches)
	fmt.Fprintf(bw, "island_links: %d\n", lvl.Stats.IslandLinks)
	fmt.Fprintf(bw, "edges_before_simplify: %d\n", lvl.Stats.EdgesBefore)
	fmt.Fprintf(bw, "edges_after_simplify: %d\n", lvl.Stats.EdgesAfter)
	fmt.Fprintf(bw, "hallway_cells: %d\n", lvl.Stats.HallwayCells)
	fmt.Fprintf(bw, "door_cells: %d\n", lvl.Stats.DoorCells)
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	fmt.Fprintln(bw, ". = empty  # = room  D = door  - = horizontal  | = vertical  L = turn  T = three-way  + = four-way  h = unclassified hallway")
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	writeMapGrid(bw, g)
	fmt.Fprintln(bw, "")

	// --- Rooms ---
	fmt.Fprintln(bw, "Rooms:")
	for _, r := range lvl.Rooms.Rooms() {
		fmt.Fprintf(bw, "  id: %d template: %q x: %g y: %g width: %g height: %g entrance: %g,%g exit: %g,%g leads_to: %v\n",
			r.ID, r.Template.Name, r.Position.X, r.Position.Y, r.Template.Width, r.Template.Height,
			r.Entrance.X, r.Entrance.Y, r.Exit.X, r.Exit.Y, lvl.Rooms.Neighbors(r.ID))
	}
	fmt.Fprintln(bw, "")

	// --- Hallways ---
	fmt.Fprintln(bw, "Hallways:")
	if len(lvl.Corridors) == 0 {
		fmt.Fprintln(bw, "  (none)")
	}
	for _, c := range lvl.Corridors {
		first, last := c.Cells[0], c.Cells[len(c.Cells)-1]
		fmt.Fprintf(bw, "  from: %d to: %d cells: %d start: %d,%d end: %d,%d\n",
			c.From, c.To, len(c.Cells), first.X, first.Y, last.X, last.Y)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END LEVEL DUMP ===")
	return bw.Flush()
}

// DumpLevelToFile writes DumpLevel output to path, or to level.txt in the
// working directory when path is empty. Returns the absolute path written.
func DumpLevelToFile(lvl *generator.Level, path string) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpLevel(f, lvl); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
