package entity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/platcore/internal/domain/geom"
)

// hit records one reaction hook invocation
type hit struct {
	other EntityID
	c     Collision
}

// spy is a test double behavior that records its hook calls
type spy struct {
	base
	bounces bool
	hits    []hit
}

func (*spy) Kind() Kind      { return KindBox }
func (s *spy) Bounces() bool { return s.bounces }

func (s *spy) OnCollision(e, other *Entity, c Collision, w *World) {
	s.hits = append(s.hits, hit{other: other.ID, c: c})
}

func newTestWorld() *World {
	return NewWorld(DefaultParams())
}

func spawnSpy(t *testing.T, w *World, r geom.Rect, bounces bool) (*Entity, *spy) {
	t.Helper()
	s := &spy{bounces: bounces}
	e, err := New(r.Pos(), r.Size(), "spy", s)
	require.NoError(t, err)
	w.Spawn(e)
	return e, s
}

func spawn(t *testing.T, w *World, ctor Constructor, pos geom.Vec) *Entity {
	t.Helper()
	e, err := ctor(pos, "test", w.Params())
	require.NoError(t, err)
	w.Spawn(e)
	return e
}

func playerOf(e *Entity) *Player {
	return e.Behavior().(*Player)
}
