package entity

import "github.com/younwookim/platcore/internal/domain/geom"

// Hazard is an anchored instant-death zone (lava)
type Hazard struct {
	Brick
}

// NewHazard creates a one-tile hazard
func NewHazard(pos geom.Vec, sprite Sprite, p *Params) (*Entity, error) {
	return New(pos, p.Tile, sprite, &Hazard{Brick{kind: KindHazard, spawn: pos}})
}

// OnCollision kills the player, then re-anchors like any brick
func (h *Hazard) OnCollision(e, other *Entity, c Collision, w *World) {
	if other.Kind() == KindPlayer && !other.Remove {
		other.Remove = true
		w.Emit(Event{Kind: EventPlayerKilled, Subject: other.ID, Other: e.ID, What: KindPlayer})
	}
	h.Brick.OnCollision(e, other, c, w)
}
