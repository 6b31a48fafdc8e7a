// Package renderer draws a generated level as colored text, one glyph per
// hallway grid cell with north at the top.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"undercroft/pkg/engine/geometry"
	"undercroft/pkg/engine/terminal"
	"undercroft/pkg/engine/world"
	"undercroft/pkg/game/generator"
)

// Icon constants for the level preview
const (
	IconRoom    = "▒"
	IconEmpty   = " "
	IconDoor    = "□"
	IconHallway = "·" // hallway cell with no connected neighbor
)

var tileIcons = map[world.CellType]string{
	world.Empty:              IconEmpty,
	world.Blocked:            IconRoom,
	world.Hallway:            IconHallway,
	world.Door:               IconDoor,
	world.StraightHorizontal: "─",
	world.StraightVertical:   "│",
	world.TurnNorthEast:      "└",
	world.TurnSouthEast:      "┌",
	world.TurnSouthWest:      "┐",
	world.TurnNorthWest:      "┘",
	world.ThreeWayNoNorth:    "┬",
	world.ThreeWayNoEast:     "┤",
	world.ThreeWayNoSouth:    "┴",
	world.ThreeWayNoWest:     "├",
	world.FourWay:            "┼",
}

// Icon returns the glyph drawn for a cell type
func Icon(t world.CellType) string {
	if icon, ok := tileIcons[t]; ok {
		return icon
	}
	return "?"
}

// Renderer writes level previews. Width is the maximum number of columns
// per line; wider maps are clipped on the east side.
type Renderer struct {
	Width int

	colorRoom    color.Style
	colorStart   color.Style
	colorHallway color.Style
	colorDoor    color.Style
	colorSubtle  color.Style
	colorTitle   color.Style
}

// New creates a renderer clipped to width columns. A width of zero or less
// uses the current terminal width.
func New(width int) *Renderer {
	if width <= 0 {
		width = terminal.GetWidth()
	}
	r := &Renderer{Width: width}
	r.InitColors()
	return r
}

// InitColors initializes the color styles
func (r *Renderer) InitColors() {
	r.colorRoom = color.Style{color.FgGray}
	r.colorStart = color.Style{color.FgGreen, color.OpBold}
	r.colorHallway = color.Style{color.FgCyan}
	r.colorDoor = color.Style{color.FgYellow, color.OpBold}
	r.colorSubtle = color.Style{color.FgGray, color.OpBold}
	r.colorTitle = color.Style{color.FgMagenta, color.OpBold}
}

// Render writes the title, the map and the legend for lvl to w
func (r *Renderer) Render(w io.Writer, lvl *generator.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no level to render")
	}

	var b strings.Builder
	b.WriteString(r.colorTitle.Sprint(gotext.Get("Level %d: %d rooms, %d hallways", lvl.Seed, lvl.Rooms.Len(), lvl.Rooms.EdgeCount())))
	b.WriteString("\n\n")

	startCells := startRoomCells(lvl)
	g := lvl.Grid
	cols := g.Width()
	clipped := cols > r.Width
	if clipped {
		cols = r.Width
	}

	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < cols; x++ {
			b.WriteString(r.cellString(g.Get(x, y), startCells.contains(x, y)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if clipped {
		b.WriteString(r.colorSubtle.Sprint(gotext.Get("(map clipped to %d of %d columns)", cols, g.Width())))
		b.WriteString("\n")
	}
	for _, line := range r.Legend() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Legend returns one styled line per glyph family
func (r *Renderer) Legend() []string {
	return []string{
		r.colorRoom.Sprint(IconRoom) + " " + gotext.Get("room"),
		r.colorStart.Sprint(IconRoom) + " " + gotext.Get("start room"),
		r.colorDoor.Sprint(IconDoor) + " " + gotext.Get("door"),
		r.colorHallway.Sprint("─│┌┼") + " " + gotext.Get("hallway"),
	}
}

func (r *Renderer) cellString(t world.CellType, start bool) string {
	icon := Icon(t)
	switch {
	case t == world.Blocked && start:
		return r.colorStart.Sprint(icon)
	case t == world.Blocked:
		return r.colorRoom.Sprint(icon)
	case t == world.Door:
		return r.colorDoor.Sprint(icon)
	case t.IsHallway():
		return r.colorHallway.Sprint(icon)
	default:
		return icon
	}
}

// cellRange is an inclusive block of grid cells
type cellRange struct {
	x0, y0, x1, y1 int
}

func (c cellRange) contains(x, y int) bool {
	return x >= c.x0 && x <= c.x1 && y >= c.y0 && y <= c.y1
}

// startRoomCells returns the cells covered by the start room's footprint
func startRoomCells(lvl *generator.Level) cellRange {
	room := lvl.Rooms.Room(lvl.Start)
	if room == nil {
		return cellRange{x0: 0, y0: 0, x1: -1, y1: -1}
	}
	fp := room.Footprint()
	inset := geometry.Pt(0.02, 0.02)
	x0, y0 := lvl.Grid.CellAt(fp.Min.Add(inset))
	x1, y1 := lvl.Grid.CellAt(fp.Max.Sub(inset))
	return cellRange{x0: x0, y0: y0, x1: x1, y1: y1}
}
