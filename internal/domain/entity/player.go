package entity

import (
	"math"

	"github.com/younwookim/platcore/internal/domain/geom"
)

// walkThreshold is the relative speed above which the player counts as walking
const walkThreshold = 0.1

// Player is the input-driven variant
type Player struct {
	jumping       bool
	sinceGrounded int      // frames since last grounded (coyote/long-jump clock)
	ground        EntityID // supporting entity, zero when airborne
	nextLevel     bool
	walking       bool
}

// NewPlayer creates the player entity
func NewPlayer(pos geom.Vec, sprite Sprite, p *Params) (*Entity, error) {
	return New(pos, p.PlayerSize, sprite, &Player{})
}

func (*Player) Kind() Kind    { return KindPlayer }
func (*Player) Bounces() bool { return true }

// Jumping reports whether a jump is in progress
func (pl *Player) Jumping() bool { return pl.jumping }

// SinceGrounded returns the frames elapsed since the player was last grounded
func (pl *Player) SinceGrounded() int { return pl.sinceGrounded }

// Ground returns the ID of the supporting entity (zero when airborne)
func (pl *Player) Ground() EntityID { return pl.ground }

// NextLevel reports whether the player collected the goal
func (pl *Player) NextLevel() bool { return pl.nextLevel }

// Walking reports whether the player moved relative to its ground last frame
func (pl *Player) Walking() bool { return pl.walking }

// OnCollision handles walkers (stomp or die) and remembers the ground
func (pl *Player) OnCollision(e, other *Entity, c Collision, w *World) {
	if other.Kind() == KindWalker {
		if other.Remove {
			return
		}
		if !e.Grounded {
			other.Remove = true
			e.Vel.Y = -w.Params().JumpStrength
			w.Emit(Event{Kind: EventStomp, Subject: e.ID, Other: other.ID, What: KindPlayer})
		} else {
			e.Remove = true
			w.Emit(Event{Kind: EventPlayerKilled, Subject: e.ID, Other: other.ID, What: KindPlayer})
		}
		return
	}
	if c.Dir == DirTop && c.Bounces && other.Bounces() {
		pl.ground = other.ID
	}
}

// Update runs the input state machine, friction and integration
func (pl *Player) Update(e *Entity, w *World) {
	p := w.Params()
	pl.handleInput(e, w.Input(), p)

	friction := p.MovingFriction
	if e.Acc.X == 0 {
		friction = p.GroundFriction
	}
	// On moving platforms friction pulls toward the platform's velocity
	targetVel := 0.0
	if g, ok := w.Lookup(pl.ground); ok {
		targetVel = g.Vel.X
	} else {
		pl.ground = 0
	}
	e.Acc.X += (targetVel - e.Vel.X) * friction * e.Mass

	e.Integrate(w)

	if e.Grounded {
		pl.sinceGrounded = 0
		pl.jumping = false
		pl.walking = math.Abs(e.Vel.X-targetVel) > walkThreshold
	} else {
		pl.ground = 0
		pl.sinceGrounded++
		pl.walking = false
	}
}

func (pl *Player) handleInput(e *Entity, in Input, p *Params) {
	if in.Left {
		e.Acc.X -= p.PlayerSpeed * e.Mass
	}
	if in.Right {
		e.Acc.X += p.PlayerSpeed * e.Mass
	}

	if in.Jump {
		// Holding jump after take-off keeps pushing up for a while
		if !pl.jumping && pl.sinceGrounded < p.CoyoteFrames {
			pl.jumping = true
			e.Acc.Y = -p.JumpStrength * e.Mass
		} else if pl.jumping && pl.sinceGrounded < p.LongJumpFrames {
			e.Acc.Y -= p.JumpStrength * e.Mass / p.LongJumpDivisor
		}
	} else if pl.jumping {
		pl.sinceGrounded = p.LongJumpFrames + 1
	}
}

// SetNextLevel marks the player as having reached the goal
func (pl *Player) SetNextLevel() { pl.nextLevel = true }
