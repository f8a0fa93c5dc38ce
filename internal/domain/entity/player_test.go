package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platcore/internal/domain/geom"
)

func stepPlayer(w *World, e *Entity, in Input) {
	w.input = in
	e.Update(w)
}

func TestPlayer_JumpImpulseOnce(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	pl := playerOf(e)

	stepPlayer(w, e, Input{Jump: true})

	assert.True(t, pl.Jumping())
	// -15 one-shot, +3 fall gravity (velocity was not negative yet)
	assert.InDelta(t, -12.0, e.Vel.Y, 1e-9)
	assert.Equal(t, 1, pl.SinceGrounded())

	stepPlayer(w, e, Input{Jump: true})

	// no second impulse: -1 sustained long jump, +2 jumping gravity
	assert.True(t, pl.Jumping())
	assert.InDelta(t, -11.0, e.Vel.Y, 1e-9)
}

func TestPlayer_LongJumpWindowExpires(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	pl := playerOf(e)

	vy := 0.0
	for i := 0; i < 12; i++ {
		prev := vy
		stepPlayer(w, e, Input{Jump: true})
		vy = e.Vel.Y
		if i == 0 {
			continue
		}
		delta := vy - prev
		if pl.SinceGrounded()-1 < w.Params().LongJumpFrames {
			assert.InDelta(t, 1.0, delta, 1e-9, "frame %d: sustained push", i)
		} else {
			assert.InDelta(t, 2.0, delta, 1e-9, "frame %d: plain jumping gravity", i)
		}
	}
}

func TestPlayer_ReleaseClosesLongJump(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	pl := playerOf(e)

	stepPlayer(w, e, Input{Jump: true})
	require.InDelta(t, -12.0, e.Vel.Y, 1e-9)

	stepPlayer(w, e, Input{})
	assert.InDelta(t, -10.0, e.Vel.Y, 1e-9)
	assert.Equal(t, w.Params().LongJumpFrames+2, pl.SinceGrounded())

	// pressing again mid-air does nothing: still jumping, window closed
	stepPlayer(w, e, Input{Jump: true})
	assert.True(t, pl.Jumping())
	assert.InDelta(t, -8.0, e.Vel.Y, 1e-9)
}

func TestPlayer_CoyoteTime(t *testing.T) {
	tests := []struct {
		name     string
		fallFor  int
		wantJump bool
	}{
		{"just left the ground", 1, true},
		{"last coyote frame", 9, true},
		{"coyote expired", 10, false},
		{"long gone", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			w.Params().TerminalVelocity = 1000
			e := spawn(t, w, NewPlayer, geom.V(0, 0))
			pl := playerOf(e)

			for i := 0; i < tt.fallFor; i++ {
				stepPlayer(w, e, Input{})
			}
			require.Equal(t, tt.fallFor, pl.SinceGrounded())
			before := e.Vel.Y

			stepPlayer(w, e, Input{Jump: true})

			assert.Equal(t, tt.wantJump, pl.Jumping())
			if tt.wantJump {
				assert.InDelta(t, before-15+3, e.Vel.Y, 1e-9)
			} else {
				assert.InDelta(t, before+3, e.Vel.Y, 1e-9)
			}
		})
	}
}

func TestPlayer_HorizontalInputAndFriction(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))

	stepPlayer(w, e, Input{Right: true})
	assert.InDelta(t, 1.0, e.Vel.X, 1e-9)

	// moving friction pulls back toward zero while accelerating
	stepPlayer(w, e, Input{Right: true})
	assert.InDelta(t, 1.93, e.Vel.X, 1e-9)

	// idle uses the stronger ground friction
	stepPlayer(w, e, Input{})
	assert.InDelta(t, 1.93*0.7, e.Vel.X, 1e-9)
}

func TestPlayer_OpposingInputsCancel(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	e.Vel.X = 2

	stepPlayer(w, e, Input{Left: true, Right: true})

	assert.InDelta(t, 1.4, e.Vel.X, 1e-9)
}

func TestPlayer_LandingResetsJump(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	brick := spawn(t, w, NewBrick, geom.V(-5, 31))
	pl := playerOf(e)
	pl.jumping = true
	pl.sinceGrounded = 7

	stepPlayer(w, e, Input{})

	assert.True(t, e.Grounded)
	assert.False(t, pl.Jumping())
	assert.Equal(t, 0, pl.SinceGrounded())
	assert.Equal(t, brick.ID, pl.Ground())
	assert.Equal(t, 1.0, e.Bounds.Y)
	assert.Equal(t, 0.0, e.Vel.Y)
}

func TestPlayer_GroundVelocityIsFrictionTarget(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(5, 69))
	platform := spawn(t, w, NewPlatform, geom.V(0, 100))
	pl := playerOf(e)

	w.Step(Input{})
	require.Equal(t, platform.ID, pl.Ground())
	require.Equal(t, -1.0, platform.Vel.X)

	w.Step(Input{})

	// ground friction toward the platform's -1
	assert.InDelta(t, -0.3, e.Vel.X, 1e-9)
	assert.True(t, e.Grounded)
	assert.Equal(t, platform.ID, pl.Ground())
}

func TestPlayer_GroundClearedWhenAirborne(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	brick := spawn(t, w, NewBrick, geom.V(-5, 31))
	pl := playerOf(e)

	stepPlayer(w, e, Input{})
	require.Equal(t, brick.ID, pl.Ground())

	e.Bounds.Y = -500
	stepPlayer(w, e, Input{})

	assert.False(t, e.Grounded)
	assert.Equal(t, EntityID(0), pl.Ground())
}

func TestPlayer_GroundClearedWhenRemoved(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	box := spawn(t, w, NewBox, geom.V(0, 31))
	pl := playerOf(e)

	stepPlayer(w, e, Input{})
	require.Equal(t, box.ID, pl.Ground())

	box.Remove = true
	w.Sweep()
	e.Vel.X = 2
	stepPlayer(w, e, Input{})

	assert.Equal(t, EntityID(0), pl.Ground())
	// friction target fell back to zero
	assert.InDelta(t, 1.4, e.Vel.X, 1e-9)
}

func TestPlayer_Walking(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	floor := spawn(t, w, NewGrass, geom.V(-100, 31))
	floor.Bounds.W = 400
	pl := playerOf(e)

	stepPlayer(w, e, Input{})
	assert.False(t, pl.Walking())

	stepPlayer(w, e, Input{Right: true})
	assert.True(t, pl.Walking())
}

func TestPlayer_StompsWalkerWhenAirborne(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	walker := spawn(t, w, NewWalker, geom.V(5, 20))
	e.Vel.Y = 5

	stepPlayer(w, e, Input{})

	assert.True(t, walker.Remove)
	assert.False(t, e.Remove)
	assert.Equal(t, -w.Params().JumpStrength, e.Vel.Y)

	events := w.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, EventStomp, events[0].Kind)
	assert.Equal(t, e.ID, events[0].Subject)
	assert.Equal(t, walker.ID, events[0].Other)
}

func TestPlayer_DiesOnWalkerWhenGrounded(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	walker := spawn(t, w, NewWalker, geom.V(5, 10))
	e.Grounded = true

	stepPlayer(w, e, Input{})

	assert.True(t, e.Remove)
	assert.False(t, walker.Remove)

	events := w.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, EventPlayerKilled, events[0].Kind)
}

func TestPlayer_WalkerPassesThrough(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	spawn(t, w, NewWalker, geom.V(5, 10))
	e.Vel.Y = 5

	stepPlayer(w, e, Input{})

	// walkers don't bounce: no positional correction
	assert.Equal(t, 8.0, e.Bounds.Y)
}

func TestPlayer_StompedWalkerIsInert(t *testing.T) {
	w := newTestWorld()
	e := spawn(t, w, NewPlayer, geom.V(0, 0))
	walker := spawn(t, w, NewWalker, geom.V(5, 10))
	walker.Remove = true
	e.Grounded = true

	stepPlayer(w, e, Input{})

	assert.False(t, e.Remove)
	assert.Empty(t, w.Drain())
}
