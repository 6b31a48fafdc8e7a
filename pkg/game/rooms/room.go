package rooms

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"undercroft/pkg/engine/geometry"
)

// Room is a placed instance of a template
type Room struct {
	ID       int
	Template *Template
	Position geometry.Point

	// Connected holds the IDs of rooms this room leads to. It starts out
	// symmetric and becomes directed once the graph is simplified.
	Connected mapset.Set[int]

	// Absolute marker positions, valid after Finalize
	Entrance geometry.Point
	Exit     geometry.Point
}

// Finalize recomputes the absolute entrance and exit from the position
func (r *Room) Finalize() {
	r.Entrance = r.Position.Add(r.Template.Entrance)
	r.Exit = r.Position.Add(r.Template.Exit)
}

// Footprint returns the axis-aligned area the room occupies
func (r *Room) Footprint() geometry.Rect {
	return geometry.RectAround(r.Position, r.Template.Width, r.Template.Height)
}

// Edge is a directed connection between two rooms
type Edge struct {
	From int
	To   int
}

// Arena owns every room of a level, addressed by index
type Arena struct {
	rooms []*Room
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{}
}

// Add places a new room and returns it. IDs are assigned in insertion order.
func (a *Arena) Add(t *Template, pos geometry.Point) *Room {
	r := &Room{
		ID:        len(a.rooms),
		Template:  t,
		Position:  pos,
		Connected: mapset.New[int](),
	}
	r.Finalize()
	a.rooms = append(a.rooms, r)
	return r
}

// Len returns the number of rooms
func (a *Arena) Len() int {
	return len(a.rooms)
}

// Room returns the room with the given ID, or nil
func (a *Arena) Room(id int) *Room {
	if id < 0 || id >= len(a.rooms) {
		return nil
	}
	return a.rooms[id]
}

// Rooms returns all rooms in ID order
func (a *Arena) Rooms() []*Room {
	return a.rooms
}

// Connect links two rooms in both directions. Self-links are ignored.
func (a *Arena) Connect(x, y int) {
	if x == y {
		return
	}
	a.rooms[x].Connected.Put(y)
	a.rooms[y].Connected.Put(x)
}

// Disconnect removes the directed edge from -> to
func (a *Arena) Disconnect(from, to int) {
	a.rooms[from].Connected.Remove(to)
}

// Link adds the directed edge from -> to
func (a *Arena) Link(from, to int) {
	a.rooms[from].Connected.Put(to)
}

// HasEdge reports whether from leads to to
func (a *Arena) HasEdge(from, to int) bool {
	return a.rooms[from].Connected.Has(to)
}

// Neighbors returns the IDs id leads to, in ascending order
func (a *Arena) Neighbors(id int) []int {
	set := a.rooms[id].Connected
	ids := make([]int, 0, set.Size())
	set.Each(func(n int) {
		ids = append(ids, n)
	})
	sort.Ints(ids)
	return ids
}

// InDegree counts the rooms that lead to id
func (a *Arena) InDegree(id int) int {
	n := 0
	for _, r := range a.rooms {
		if r.Connected.Has(id) {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of directed edges
func (a *Arena) EdgeCount() int {
	n := 0
	for _, r := range a.rooms {
		n += r.Connected.Size()
	}
	return n
}

// Reachable returns the set of rooms reachable from root along directed
// edges, root included.
func (a *Arena) Reachable(root int) mapset.Set[int] {
	seen := mapset.New[int]()
	if a.Room(root) == nil {
		return seen
	}

	q := queue.New[int]()
	q.Enqueue(root)
	seen.Put(root)
	for !q.Empty() {
		id := q.Dequeue()
		a.rooms[id].Connected.Each(func(n int) {
			if !seen.Has(n) {
				seen.Put(n)
				q.Enqueue(n)
			}
		})
	}
	return seen
}

// ReachableCount returns how many rooms can be reached from root, root included
func (a *Arena) ReachableCount(root int) int {
	return a.Reachable(root).Size()
}

// Edges lists every edge reachable from root in breadth-first order,
// visiting each room's neighbors in ascending ID order.
func (a *Arena) Edges(root int) []Edge {
	var edges []Edge
	if a.Room(root) == nil {
		return edges
	}

	seen := mapset.New[int]()
	q := queue.New[int]()
	q.Enqueue(root)
	seen.Put(root)
	for !q.Empty() {
		id := q.Dequeue()
		for _, n := range a.Neighbors(id) {
			edges = append(edges, Edge{From: id, To: n})
			if !seen.Has(n) {
				seen.Put(n)
				q.Enqueue(n)
			}
		}
	}
	return edges
}

// Bounds returns the union of all room footprints
func (a *Arena) Bounds() geometry.Rect {
	if len(a.rooms) == 0 {
		return geometry.Rect{}
	}
	b := a.rooms[0].Footprint()
	for _, r := range a.rooms[1:] {
		b = b.Union(r.Footprint())
	}
	return b
}
