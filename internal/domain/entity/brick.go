package entity

import "github.com/younwookim/platcore/internal/domain/geom"

// Brick is a static anchor: whatever hits it, it snaps back to where it
// was spawned and keeps no velocity. Grass uses the same behavior.
type Brick struct {
	kind  Kind
	spawn geom.Vec
}

// NewBrick creates a one-tile brick
func NewBrick(pos geom.Vec, sprite Sprite, p *Params) (*Entity, error) {
	return New(pos, p.Tile, sprite, &Brick{kind: KindBrick, spawn: pos})
}

// NewGrass creates a one-tile grass brick
func NewGrass(pos geom.Vec, sprite Sprite, p *Params) (*Entity, error) {
	return New(pos, p.Tile, sprite, &Brick{kind: KindGrass, spawn: pos})
}

func (b *Brick) Kind() Kind  { return b.kind }
func (*Brick) Bounces() bool { return true }

// Spawn returns the fixed anchor position
func (b *Brick) Spawn() geom.Vec { return b.spawn }

// OnCollision re-anchors the brick
func (b *Brick) OnCollision(e, other *Entity, c Collision, w *World) {
	anchor(e, b.spawn)
}

// Update re-anchors, then still resolves so others bounce off it
func (b *Brick) Update(e *Entity, w *World) {
	anchor(e, b.spawn)
	ResolveCollisions(e, w.Entities(), w)
}

func anchor(e *Entity, spawn geom.Vec) {
	e.Bounds.SetPos(spawn)
	e.Vel = geom.Vec{}
	e.Acc = geom.Vec{}
}

// Reverser is an invisible anchored marker that turns sliding platforms
// around. Nothing bounces off it.
type Reverser struct {
	Brick
}

// NewReverser creates a one-tile reverser
func NewReverser(pos geom.Vec, sprite Sprite, p *Params) (*Entity, error) {
	return New(pos, p.Tile, sprite, &Reverser{Brick{kind: KindReverser, spawn: pos}})
}

func (*Reverser) Bounces() bool { return false }
