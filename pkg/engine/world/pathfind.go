package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"
)

var (
	// ErrNoPath is returned when the open set empties before the goal is reached
	ErrNoPath = errors.New("no path between cells")
	// ErrBlockedEndpoint is returned when the start or goal cannot be entered
	ErrBlockedEndpoint = errors.New("path endpoint is blocked or out of bounds")
)

// Pos is an integer cell position on the grid
type Pos struct {
	X int
	Y int
}

// pathNode is the per-cell search state, reset at the start of every search
type pathNode struct {
	cost      float64 // cheapest known cost from the start
	heuristic float64 // straight-line distance to the goal
	prev      int     // index of the predecessor on the best path, -1 for none
	order     int     // discovery order, -1 while undiscovered
	closed    bool
}

func (n *pathNode) score() float64 {
	return n.cost + n.heuristic
}

type openEntry struct {
	index int
	score float64
	order int
}

// Pathfinder runs repeated A* searches over one grid, reusing its node
// storage and path buffer between calls. Not safe for concurrent use.
type Pathfinder struct {
	grid  *Grid
	nodes []pathNode
	path  []Pos
}

// NewPathfinder creates a pathfinder for g
func NewPathfinder(g *Grid) *Pathfinder {
	return &Pathfinder{
		grid:  g,
		nodes: make([]pathNode, g.width*g.height),
	}
}

func (p *Pathfinder) index(x, y int) int {
	return y*p.grid.width + x
}

func (p *Pathfinder) pos(i int) Pos {
	return Pos{X: i % p.grid.width, Y: i / p.grid.width}
}

// reset clears search state and precomputes the heuristic toward goal
func (p *Pathfinder) reset(goal Pos) {
	for i := range p.nodes {
		at := p.pos(i)
		dx := float64(goal.X - at.X)
		dy := float64(goal.Y - at.Y)
		p.nodes[i] = pathNode{
			cost:      math.Inf(1),
			heuristic: math.Sqrt(dx*dx + dy*dy),
			prev:      -1,
			order:     -1,
		}
	}
}

// FindPath returns the cells of a shortest 4-connected path from start to
// goal, both included, avoiding Blocked cells. Ties in cost+heuristic are
// expanded in discovery order. The returned slice is reused by the next call.
func (p *Pathfinder) FindPath(start, goal Pos) ([]Pos, error) {
	g := p.grid
	for _, end := range []Pos{start, goal} {
		if !g.IsValidPosition(end.X, end.Y) || !g.Get(end.X, end.Y).IsWalkable() {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrBlockedEndpoint, end.X, end.Y)
		}
	}

	p.reset(goal)

	open := heap.New[openEntry](func(a, b openEntry) bool {
		if a.score != b.score {
			return a.score < b.score
		}
		return a.order < b.order
	})

	discovered := 0
	startIdx := p.index(start.X, start.Y)
	goalIdx := p.index(goal.X, goal.Y)
	p.nodes[startIdx].cost = 0
	p.nodes[startIdx].order = discovered
	discovered++
	open.Push(openEntry{index: startIdx, score: p.nodes[startIdx].score(), order: 0})

	for {
		entry, ok := open.Pop()
		if !ok {
			return nil, fmt.Errorf("%w: (%d,%d) to (%d,%d)", ErrNoPath, start.X, start.Y, goal.X, goal.Y)
		}

		current := &p.nodes[entry.index]
		if current.closed || entry.score > current.score() {
			continue // stale entry
		}
		current.closed = true

		if entry.index == goalIdx {
			return p.buildPath(goalIdx), nil
		}

		at := p.pos(entry.index)
		for _, dir := range AllDirections() {
			nx, ny, t := g.Neighbor(at.X, at.Y, dir)
			if !g.IsValidPosition(nx, ny) || !t.IsWalkable() {
				continue
			}
			ni := p.index(nx, ny)
			next := &p.nodes[ni]
			if next.closed {
				continue
			}
			cost := current.cost + 1
			if cost < next.cost {
				next.cost = cost
				next.prev = entry.index
				if next.order < 0 {
					next.order = discovered
					discovered++
				}
				open.Push(openEntry{index: ni, score: next.score(), order: next.order})
			}
		}
	}
}

// buildPath walks predecessor links back from the goal and reverses them
// into the reusable buffer.
func (p *Pathfinder) buildPath(goalIdx int) []Pos {
	p.path = p.path[:0]
	for i := goalIdx; i >= 0; i = p.nodes[i].prev {
		p.path = append(p.path, p.pos(i))
	}
	for l, r := 0, len(p.path)-1; l < r; l, r = l+1, r-1 {
		p.path[l], p.path[r] = p.path[r], p.path[l]
	}
	return p.path
}
