// Package rooms holds room templates, the sources that supply them, and the
// arena of placed room instances with their connection graph.
package rooms

import (
	"fmt"

	"undercroft/pkg/engine/geometry"
)

// Template describes a kind of room. Entrance and Exit are offsets from the
// room center. Templates are shared between rooms and never mutated.
type Template struct {
	Name     string
	Width    float64
	Height   float64
	Entrance geometry.Point
	Exit     geometry.Point
}

// NewTemplate creates a template with the entrance on the middle of the west
// wall and the exit on the middle of the east wall
func NewTemplate(name string, width, height float64) *Template {
	return &Template{
		Name:     name,
		Width:    width,
		Height:   height,
		Entrance: geometry.Pt(-width/2, 0),
		Exit:     geometry.Pt(width/2, 0),
	}
}

// Validate checks the template has a usable size
func (t *Template) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("template %q: size %gx%g must be positive", t.Name, t.Width, t.Height)
	}
	return nil
}

// Facing returns which wall a marker offset sits on. Markers on a corner
// count for the horizontal wall; markers inside the footprint face along
// their dominant axis relative to the template size.
func (t *Template) Facing(offset geometry.Point) Side {
	hw, hh := t.Width/2, t.Height/2
	switch {
	case offset.X <= -hw:
		return SideWest
	case offset.X >= hw:
		return SideEast
	case offset.Y <= -hh:
		return SideSouth
	case offset.Y >= hh:
		return SideNorth
	}

	nx, ny := offset.X/hw, offset.Y/hh
	if abs(nx) >= abs(ny) {
		if nx < 0 {
			return SideWest
		}
		return SideEast
	}
	if ny < 0 {
		return SideSouth
	}
	return SideNorth
}

// Side is a wall of a room's footprint
type Side int

// Room walls
const (
	SideNorth Side = iota
	SideEast
	SideSouth
	SideWest
)

// String returns the wall name
func (s Side) String() string {
	switch s {
	case SideNorth:
		return "north"
	case SideEast:
		return "east"
	case SideSouth:
		return "south"
	case SideWest:
		return "west"
	default:
		return "unknown"
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
