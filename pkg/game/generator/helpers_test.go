package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"undercroft/pkg/engine/geometry"
	"undercroft/pkg/engine/world"
	"undercroft/pkg/game/rooms"
)

// templatesOf builds default-marker templates of the given widths and heights
func templatesOf(sizes ...[2]float64) []*rooms.Template {
	templates := make([]*rooms.Template, 0, len(sizes))
	for i, s := range sizes {
		templates = append(templates, rooms.NewTemplate("t"+string(rune('a'+i)), s[0], s[1]))
	}
	return templates
}

// scenarioTemplates are five templates with widths 4, 4, 6, 6 and 8
func scenarioTemplates() []*rooms.Template {
	return templatesOf([2]float64{4, 4}, [2]float64{4, 6}, [2]float64{6, 4}, [2]float64{6, 6}, [2]float64{8, 8})
}

// roomyConfig spreads rooms far enough apart that carving cannot fail
func roomyConfig() Config {
	cfg := DefaultConfig()
	cfg.MinSeparation = 40
	cfg.CellSize = 2
	cfg.BorderMargin = 20
	return cfg
}

func arenaAt(t *rooms.Template, points ...geometry.Point) *rooms.Arena {
	arena := rooms.NewArena()
	for _, p := range points {
		arena.Add(t, p)
	}
	return arena
}

func onGridLine(v, size float64) bool {
	f := v / size
	return math.Abs(f-math.Round(f)) < 1e-9
}

func requireAdjacentSteps(t *testing.T, cells []world.Pos) {
	t.Helper()
	require.NotEmpty(t, cells)
	for i := 1; i < len(cells); i++ {
		dx := cells[i].X - cells[i-1].X
		dy := cells[i].Y - cells[i-1].Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		require.Equal(t, 1, dx+dy, "step %d: %v -> %v", i, cells[i-1], cells[i])
	}
}
