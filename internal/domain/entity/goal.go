package entity

import "github.com/younwookim/platcore/internal/domain/geom"

// Goal ends the level when the player touches it
type Goal struct {
	base
}

// NewGoal creates the level goal (a coin that falls to rest)
func NewGoal(pos geom.Vec, sprite Sprite, p *Params) (*Entity, error) {
	return New(pos, p.GoalSize, sprite, &Goal{})
}

func (*Goal) Kind() Kind    { return KindGoal }
func (*Goal) Bounces() bool { return false }

// OnCollision flags the player for the next level and removes the goal
func (*Goal) OnCollision(e, other *Entity, c Collision, w *World) {
	pl, ok := other.Behavior().(*Player)
	if !ok || e.Remove {
		return
	}
	pl.SetNextLevel()
	e.Remove = true
	w.Emit(Event{Kind: EventGoalReached, Subject: other.ID, Other: e.ID, What: KindPlayer})
}
