package entity

import "github.com/younwookim/platcore/internal/domain/geom"

// Box is a pushable crate with ground friction
type Box struct {
	base
}

// NewBox creates a square box
func NewBox(pos geom.Vec, sprite Sprite, p *Params) (*Entity, error) {
	return New(pos, geom.V(p.BoxSize, p.BoxSize), sprite, &Box{})
}

func (*Box) Kind() Kind    { return KindBox }
func (*Box) Bounces() bool { return true }

// Update applies friction opposing its horizontal velocity, then integrates
func (*Box) Update(e *Entity, w *World) {
	e.Acc.X -= e.Vel.X * w.Params().GroundFriction * e.Mass
	e.Integrate(w)
}
