package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"undercroft/pkg/engine/geometry"
	"undercroft/pkg/game/rooms"
)

// PlaceRooms drops cfg.RoomCount rooms at random positions inside the
// configured bound, then pushes rooms apart until no two centers are closer
// than cfg.MinSeparation. Every close pair contributes a push of length
// cfg.SpreadSpeed away from the other room; all pushes are computed from the
// previous positions before any room moves.
//
// Returns the arena and the number of spreading iterations it took.
func PlaceRooms(ctx context.Context, templates []*rooms.Template, cfg Config, rng *rand.Rand) (*rooms.Arena, int, error) {
	if len(templates) == 0 {
		return nil, 0, newError(StageTemplates, KindTemplateSource, rooms.ErrNoTemplates)
	}

	arena := rooms.NewArena()
	for i := 0; i < cfg.RoomCount; i++ {
		t := templates[rng.Intn(len(templates))]
		pos := geometry.Pt(
			(rng.Float64()-0.5)*cfg.BoundWidth,
			(rng.Float64()-0.5)*cfg.BoundHeight,
		)
		arena.Add(t, pos)
	}

	iterations, err := spreadRooms(ctx, arena, cfg, rng)
	if err != nil {
		return nil, iterations, err
	}

	for _, r := range arena.Rooms() {
		r.Finalize()
	}
	return arena, iterations, nil
}

func spreadRooms(ctx context.Context, arena *rooms.Arena, cfg Config, rng *rand.Rand) (int, error) {
	all := arena.Rooms()
	moves := make([]geometry.Point, len(all))
	crowded := make([]bool, len(all))
	minSq := cfg.MinSeparation * cfg.MinSeparation

	for iteration := 0; ; iteration++ {
		if err := ctx.Err(); err != nil {
			return iteration, newError(StagePlacement, KindCanceled, err)
		}

		anyCrowded := false
		for i, r := range all {
			moves[i] = geometry.Point{}
			crowded[i] = false
			for j, o := range all {
				if i == j || r.Position.DistSq(o.Position) >= minSq {
					continue
				}
				crowded[i] = true
				anyCrowded = true

				dir := r.Position.Sub(o.Position).Normalize()
				if dir.IsZero() {
					dir = randomUnit(rng)
				}
				moves[i] = moves[i].Add(dir.Scale(cfg.SpreadSpeed))
			}
		}
		if !anyCrowded {
			return iteration, nil
		}
		if iteration >= cfg.MaxSpreadIterations {
			return iteration, newError(StagePlacement, KindPlacementDegenerate,
				fmt.Errorf("rooms still closer than %g after %d iterations", cfg.MinSeparation, iteration))
		}

		for i, r := range all {
			if !crowded[i] {
				continue
			}
			step := moves[i]
			if step.IsZero() {
				// pushes cancelled out exactly
				step = randomUnit(rng).Scale(cfg.SpreadSpeed)
			}
			r.Position = r.Position.Add(step)
		}
	}
}

func randomUnit(rng *rand.Rand) geometry.Point {
	a := rng.Float64() * 2 * math.Pi
	return geometry.Pt(math.Cos(a), math.Sin(a))
}
