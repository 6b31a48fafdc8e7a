package generator

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"undercroft/pkg/game/rooms"
)

// SimplifyStats reports what Simplify did
type SimplifyStats struct {
	Removed   int
	LoopsKept int
}

// Simplify prunes the connection graph to as few directed edges as keep
// every room reachable from start. Edges into the start room are removed
// first; then every edge is tentatively deleted in breadth-first order and
// restored if fewer rooms became reachable; finally any remaining two-way
// pair is reduced to one direction where reachability allows.
func Simplify(arena *rooms.Arena, start int) SimplifyStats {
	var stats SimplifyStats
	if arena.Room(start) == nil {
		return stats
	}

	want := arena.ReachableCount(start)
	stats.Removed += removeEntrances(arena, start)
	stats.Removed += pruneEdges(arena, start, want)
	removed, kept := breakLoops(arena, start, want)
	stats.Removed += removed
	stats.LoopsKept = kept
	return stats
}

// removeEntrances deletes every edge leading into start
func removeEntrances(arena *rooms.Arena, start int) int {
	n := 0
	for _, r := range arena.Rooms() {
		if r.ID != start && arena.HasEdge(r.ID, start) {
			arena.Disconnect(r.ID, start)
			n++
		}
	}
	return n
}

// walk visits rooms breadth-first from start, calling fn once per room with
// its current neighbors. Neighbors still connected after fn returns are
// queued.
func walk(arena *rooms.Arena, start int, fn func(id int, neighbors []int)) {
	seen := mapset.New[int]()
	q := queue.New[int]()
	q.Enqueue(start)
	seen.Put(start)
	for !q.Empty() {
		id := q.Dequeue()
		fn(id, arena.Neighbors(id))
		for _, n := range arena.Neighbors(id) {
			if !seen.Has(n) {
				seen.Put(n)
				q.Enqueue(n)
			}
		}
	}
}

// pruneEdges greedily deletes edges whose removal keeps want rooms reachable
func pruneEdges(arena *rooms.Arena, start, want int) int {
	removed := 0
	walk(arena, start, func(id int, neighbors []int) {
		for _, n := range neighbors {
			arena.Disconnect(id, n)
			if arena.ReachableCount(start) < want {
				arena.Link(id, n)
				continue
			}
			removed++
		}
	})
	return removed
}

// breakLoops looks for rooms that lead to each other and drops one direction,
// the reverse edge first. Pairs where neither removal keeps want rooms
// reachable are left in place and counted.
func breakLoops(arena *rooms.Arena, start, want int) (removed, kept int) {
	walk(arena, start, func(id int, neighbors []int) {
		for _, n := range neighbors {
			if !arena.HasEdge(id, n) || !arena.HasEdge(n, id) {
				continue
			}

			arena.Disconnect(n, id)
			if arena.ReachableCount(start) >= want {
				removed++
				continue
			}
			arena.Link(n, id)

			arena.Disconnect(id, n)
			if arena.ReachableCount(start) >= want {
				removed++
				continue
			}
			arena.Link(id, n)
			kept++
		}
	})
	return removed, kept
}
