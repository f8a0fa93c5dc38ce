package entity

import "github.com/younwookim/platcore/internal/domain/geom"

// AddGravity applies the default gravity step.
// Ascending entities (strictly negative Vel.Y) get the lighter jumping gravity.
func (e *Entity) AddGravity(p *Params) {
	if e.Vel.Y < 0 {
		e.Acc.Y += p.GravityJumping * e.Mass
	} else {
		e.Acc.Y += p.Gravity * e.Mass
	}
}

// Integrate runs the shared physics step: gravity, acceleration into
// velocity, terminal velocity clamp, translation, collision resolution
// against the world, then resets the accumulated acceleration.
func (e *Entity) Integrate(w *World) {
	p := w.Params()

	if g, ok := e.behavior.(GravityOverrider); ok {
		g.AddGravity(e, p)
	} else {
		e.AddGravity(p)
	}

	e.Vel = e.Vel.Add(e.Acc.Scale(1 / e.Mass))

	// Downward only: nothing accelerates past it sideways
	if e.Vel.Y > p.TerminalVelocity {
		e.Vel.Y = p.TerminalVelocity
	}

	e.Bounds.Translate(e.Vel)

	ResolveCollisions(e, w.Entities(), w)

	e.Acc = geom.Vec{}
}

// base provides the default no-op hook and plain integration.
// Variants embed it and override what they need.
type base struct{}

func (base) Update(e *Entity, w *World) { e.Integrate(w) }

func (base) OnCollision(e, other *Entity, c Collision, w *World) {}
