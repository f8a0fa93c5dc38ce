package entity

import "github.com/younwookim/platcore/internal/domain/geom"

// Platform slides horizontally at a fixed speed of 1 between reversers.
// Its speed is forced every frame so side bounces cannot pump it.
type Platform struct {
	spawnY float64
}

// NewPlatform creates a one-tile sliding platform, initially moving left
func NewPlatform(pos geom.Vec, sprite Sprite, p *Params) (*Entity, error) {
	e, err := New(pos, p.Tile, sprite, &Platform{spawnY: pos.Y})
	if err != nil {
		return nil, err
	}
	e.Vel = geom.V(-1, 0)
	return e, nil
}

func (*Platform) Kind() Kind    { return KindPlatform }
func (*Platform) Bounces() bool { return true }

// AddGravity disables gravity
func (*Platform) AddGravity(e *Entity, p *Params) {}

// OnCollision reverses at reversers and on horizontal bounces
func (*Platform) OnCollision(e, other *Entity, c Collision, w *World) {
	if other.Kind() == KindReverser {
		e.Vel.X *= -1
		if e.Bounds.X < other.Bounds.X {
			e.Bounds.X = other.Bounds.X - e.Bounds.W
		} else {
			e.Bounds.X = other.Bounds.Right()
		}
		return
	}
	if c.Axis == AxisX && c.Bounces {
		e.Vel.X *= -1
	}
}

// Update forces a unit horizontal speed and pins the vertical coordinate
func (pf *Platform) Update(e *Entity, w *World) {
	e.Vel.Y = 0
	if e.Vel.X < 0 {
		e.Vel.X = -1
	} else {
		e.Vel.X = 1
	}
	e.Acc = geom.Vec{}
	e.Integrate(w)
	e.Bounds.Y = pf.spawnY
}
