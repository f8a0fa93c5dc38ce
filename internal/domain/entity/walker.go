package entity

import "github.com/younwookim/platcore/internal/domain/geom"

// Walker is a hazardous enemy patrolling back and forth on bricks.
// It turns around when it bumps into something or is about to walk off
// the edge of the brick it stands on. Other entities pass through it.
type Walker struct {
	base
}

// NewWalker creates a walker, initially moving left
func NewWalker(pos geom.Vec, sprite Sprite, p *Params) (*Entity, error) {
	e, err := New(pos, p.WalkerSize, sprite, &Walker{})
	if err != nil {
		return nil, err
	}
	e.Vel = geom.V(-p.WalkerSpeed, 0)
	return e, nil
}

func (*Walker) Kind() Kind    { return KindWalker }
func (*Walker) Bounces() bool { return false }

// OnCollision reverses on side contact or when past either platform edge
func (*Walker) OnCollision(e, other *Entity, c Collision, w *World) {
	if !other.Kind().Anchored() {
		return
	}
	if c.Dir == DirTop {
		if e.Bounds.X < other.Bounds.X || e.Bounds.Right() > other.Bounds.Right() {
			e.Vel.X *= -1
		}
		return
	}
	e.Vel.X *= -1
}
