// Package generator builds dungeon levels: it places rooms, connects them
// through a Delaunay triangulation, prunes the connections to a minimal
// reachable graph, aligns the rooms to a hallway grid and carves the
// hallways between them with A*.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"undercroft/pkg/engine/world"
	"undercroft/pkg/game/rooms"
)

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(ctx context.Context, seed int64) (*Level, error)
	Name() string
}

var _ LevelGenerator = (*Generator)(nil)

// Generator runs the room and hallway pipeline. A Generator holds no state
// between runs and may be reused; a single run is not concurrent.
type Generator struct {
	cfg    Config
	source rooms.Source
	log    *zap.Logger
}

// New creates a generator. A nil logger discards all output.
func New(cfg Config, source rooms.Source, log *zap.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, newError(StageConfig, KindInvalidConfig, err)
	}
	if source == nil {
		return nil, newError(StageTemplates, KindTemplateSource, rooms.ErrNoTemplates)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{cfg: cfg, source: source, log: log}, nil
}

// Name returns the display name of the generator
func (g *Generator) Name() string {
	return "Delaunay Rooms"
}

// Config returns the options the generator was created with
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate builds one level. The same seed, config and templates always
// produce the same layout. ctx is checked between stages and during room
// spreading.
func (g *Generator) Generate(ctx context.Context, seed int64) (*Level, error) {
	lvl := &Level{ID: uuid.New(), Seed: seed}
	log := g.log.With(zap.String("level_id", lvl.ID.String()), zap.Int64("seed", seed))

	templates, err := g.source.Templates()
	if err != nil {
		return nil, newError(StageTemplates, KindTemplateSource, err)
	}

	rng := rand.New(rand.NewSource(seed))
	arena, iterations, err := PlaceRooms(ctx, templates, g.cfg, rng)
	if err != nil {
		return nil, err
	}
	lvl.Rooms = arena
	lvl.Stats.SpreadIterations = iterations
	log.Debug("rooms placed", zap.Int("rooms", arena.Len()), zap.Int("iterations", iterations))

	if err := checkContext(ctx, StageConnectivity); err != nil {
		return nil, err
	}
	lvl.Bounds = LevelBounds(arena, g.cfg.BorderMargin)
	cs, err := BuildConnections(arena, lvl.Bounds, log)
	if err != nil {
		return nil, err
	}
	lvl.Start = StartRoom(arena)
	lvl.Stats.Triangles = cs.Triangles
	lvl.Stats.CandidateEdges = cs.CandidateEdges
	lvl.Stats.LookupMismatches = cs.LookupMismatches
	if g.cfg.LinkIslands {
		lvl.Stats.IslandLinks = LinkIslands(arena, lvl.Start)
	} else if reached := arena.ReachableCount(lvl.Start); reached < arena.Len() {
		return nil, newError(StageConnectivity, KindPlacementDegenerate,
			fmt.Errorf("%d of %d rooms unreachable from room %d", arena.Len()-reached, arena.Len(), lvl.Start))
	}
	log.Debug("rooms connected",
		zap.Int("triangles", cs.Triangles),
		zap.Int("edges", arena.EdgeCount()),
		zap.Int("lookup_mismatches", cs.LookupMismatches),
		zap.Int("island_links", lvl.Stats.IslandLinks))

	if err := checkContext(ctx, StageSimplify); err != nil {
		return nil, err
	}
	lvl.Stats.EdgesBefore = arena.EdgeCount()
	ss := Simplify(arena, lvl.Start)
	lvl.Stats.EdgesAfter = arena.EdgeCount()
	lvl.Stats.LoopsKept = ss.LoopsKept
	log.Debug("graph simplified",
		zap.Int("start", lvl.Start),
		zap.Int("edges", lvl.Stats.EdgesAfter),
		zap.Int("removed", ss.Removed))

	if err := checkContext(ctx, StageAlignment); err != nil {
		return nil, err
	}
	cellSize := float64(g.cfg.CellSize)
	AlignToGrid(arena, lvl.Bounds.Min, cellSize)

	if err := checkContext(ctx, StageCarving); err != nil {
		return nil, err
	}
	lvl.Grid = BuildGrid(arena, lvl.Bounds, cellSize)
	lvl.Corridors, err = CarveHallways(arena, lvl.Start, lvl.Grid)
	if err != nil {
		return nil, err
	}

	if err := checkContext(ctx, StageClassify); err != nil {
		return nil, err
	}
	world.Classify(lvl.Grid)
	lvl.Stats.DoorCells = lvl.Grid.Count(func(t world.CellType) bool { return t == world.Door })
	lvl.Stats.HallwayCells = lvl.Grid.Count(world.CellType.IsHallway)

	log.Debug("hallways carved",
		zap.Int("corridors", len(lvl.Corridors)),
		zap.Int("hallway_cells", lvl.Stats.HallwayCells),
		zap.Int("door_cells", lvl.Stats.DoorCells))
	return lvl, nil
}

// GenerateWithRetry calls Generate with seed, seed+1, ... until a level is
// produced, a non-retryable error occurs or attempts run out.
func (g *Generator) GenerateWithRetry(ctx context.Context, seed int64, attempts int) (*Level, error) {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		var lvl *Level
		lvl, err = g.Generate(ctx, seed+int64(attempt))
		if err == nil {
			return lvl, nil
		}
		if !Retryable(err) {
			return nil, err
		}
		g.log.Warn("generation failed, retrying",
			zap.Int64("seed", seed+int64(attempt)),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}
	return nil, err
}

func checkContext(ctx context.Context, stage Stage) error {
	if err := ctx.Err(); err != nil {
		return newError(stage, KindCanceled, err)
	}
	return nil
}

// IsCanceled reports whether err came from a canceled or expired context
func IsCanceled(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge) && ge.Kind == KindCanceled
}
