package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"undercroft/pkg/engine/world"
	"undercroft/pkg/game/generator"
	"undercroft/pkg/game/renderer"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Undercroft - Level %d</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 14px;
        }
        .room { color: #666; }
        .start { color: #00ff00; font-weight: bold; }
        .door { color: #ffff00; font-weight: bold; }
        .hallway { color: #00ffff; }
    </style>
</head>
<body>
`

// WriteLevelHTML writes lvl as a standalone HTML page
func WriteLevelHTML(w io.Writer, lvl *generator.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no grid")
	}

	var b strings.Builder
	fmt.Fprintf(&b, htmlHeader, lvl.Seed)
	fmt.Fprintf(&b, `    <div class="header">Seed %d &middot; %d rooms &middot; %d hallways</div>`+"\n",
		lvl.Seed, lvl.Rooms.Len(), len(lvl.Corridors))
	b.WriteString(`    <div class="map-container">` + "\n")

	g := lvl.Grid
	start := lvl.Rooms.Room(lvl.Start)
	for y := g.Height() - 1; y >= 0; y-- {
		b.WriteString(`        <div class="map-row">`)
		for x := 0; x < g.Width(); x++ {
			t := g.Get(x, y)
			icon := html.EscapeString(renderer.Icon(t))
			class := cellClass(t)
			if t == world.Blocked && start != nil && start.Footprint().Contains(g.CellCenter(x, y)) {
				class = "start"
			}
			if class == "" {
				b.WriteString(icon)
				continue
			}
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, icon)
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("    </div>\n</body>\n</html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// SaveLevelHTML writes the level preview to an HTML file and returns its name
func SaveLevelHTML(lvl *generator.Level, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("level-%d.html", lvl.Seed)
	}
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteLevelHTML(f, lvl); err != nil {
		return filename, err
	}
	return filename, nil
}

// cellClass returns the CSS class for a cell
func cellClass(t world.CellType) string {
	switch {
	case t == world.Blocked:
		return "room"
	case t == world.Door:
		return "door"
	case t.IsHallway():
		return "hallway"
	default:
		return ""
	}
}
