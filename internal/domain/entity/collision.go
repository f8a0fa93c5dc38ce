package entity

import "github.com/younwookim/platcore/internal/domain/geom"

// AxisTolerance is the width/height difference an overlap must exceed to be
// resolved along a single axis. Anything closer to square is a corner clip.
const AxisTolerance = 2

// Axis is the axis a collision is resolved on
type Axis int

const (
	AxisBoth Axis = iota // corner clip, no correction
	AxisX
	AxisY
)

// String returns the string representation of the axis
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "both"
	}
}

// Direction is the side of the other entity that was hit.
// DirLeft means this entity's right side hit the other's left side.
type Direction int

const (
	DirBoth Direction = iota
	DirLeft
	DirRight
	DirTop
	DirBottom
)

// Opposite returns the direction as seen from the other entity
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirTop:
		return DirBottom
	case DirBottom:
		return DirTop
	default:
		return DirBoth
	}
}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	default:
		return "both"
	}
}

// Collision describes one resolved overlap, as passed to reaction hooks
type Collision struct {
	Overlap geom.Rect
	Bounces bool // whether the pair was physically corrected
	Axis    Axis
	Dir     Direction
}

// Mirror returns the collision as seen by the other entity of the pair
func (c Collision) Mirror() Collision {
	return Collision{
		Overlap: c.Overlap,
		Bounces: true,
		Axis:    c.Axis,
		Dir:     c.Dir.Opposite(),
	}
}

// ClassifyAxis decides the resolution axis from the overlap rectangle.
// A difference of exactly AxisTolerance is a corner clip.
func ClassifyAxis(overlap geom.Rect) Axis {
	switch {
	case overlap.H-overlap.W > AxisTolerance:
		return AxisX
	case overlap.W-overlap.H > AxisTolerance:
		return AxisY
	default:
		return AxisBoth
	}
}

// ResolveCollisions detects and resolves every overlap between e and the
// candidates, invoking reaction hooks. Each unordered pair of bouncing
// entities is resolved at most once per frame: the driving side marks both
// contact sets and the other side sees the mirrored collision.
// Candidates need not be spawned in w, and w may be nil.
func ResolveCollisions(e *Entity, candidates []*Entity, w *World) {
	e.clearContacts()
	grounded := false

	for _, o := range candidates {
		if o == e {
			continue
		}
		// Never collide twice with the same entity in the same frame
		if e.HasContact(o) || o.HasContact(e) {
			continue
		}

		overlap := e.Bounds.Clip(o.Bounds)
		if overlap.Empty() {
			continue
		}

		bounce := o.Bounces()
		c := Collision{
			Overlap: overlap,
			Bounces: bounce,
			Axis:    ClassifyAxis(overlap),
		}

		switch c.Axis {
		case AxisX:
			if bounce {
				o.Acc.X += e.Vel.X * e.Mass
				e.Vel.X *= -1
			}
			if e.Bounds.X < o.Bounds.X {
				c.Dir = DirLeft
				if bounce {
					e.Bounds.X = o.Bounds.X - e.Bounds.W
				}
			} else {
				c.Dir = DirRight
				if bounce {
					e.Bounds.X = o.Bounds.Right()
				}
			}
		case AxisY:
			if e.Bounds.Y < o.Bounds.Y {
				c.Dir = DirTop
				if bounce {
					e.Bounds.Y = o.Bounds.Y - e.Bounds.H
					e.Vel.Y = 0
					grounded = true
				}
			} else {
				c.Dir = DirBottom
				if bounce {
					e.Bounds.Y = o.Bounds.Bottom()
					e.Vel.Y = 0
				}
			}
		default:
			c.Dir = DirBoth
		}

		e.behavior.OnCollision(e, o, c, w)

		if bounce {
			e.addContact(o)
			o.addContact(e)
			o.behavior.OnCollision(o, e, c.Mirror(), w)
		}
	}

	e.Grounded = grounded
}
