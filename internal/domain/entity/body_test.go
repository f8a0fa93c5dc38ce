package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platcore/internal/domain/geom"
)

func TestNew_MassFromArea(t *testing.T) {
	tests := []struct {
		name string
		size geom.Vec
		want float64
	}{
		{"10x10 has unit mass", geom.V(10, 10), 1},
		{"player 30x30", geom.V(30, 30), math.Log(9) + 1},
		{"walker 20x20", geom.V(20, 20), math.Log(4) + 1},
		{"wide tile", geom.V(80, 40), math.Log(32) + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(geom.V(0, 0), tt.size, "s", &Box{})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, e.Mass, 1e-9)
		})
	}
}

func TestNew_RejectsNonPositiveSize(t *testing.T) {
	sizes := []geom.Vec{
		geom.V(0, 10),
		geom.V(10, 0),
		geom.V(-5, 10),
		geom.V(-5, -5),
	}

	for _, size := range sizes {
		e, err := New(geom.V(0, 0), size, "s", &Box{})
		assert.ErrorIs(t, err, ErrInvalidSize)
		assert.Nil(t, e)
	}
}

func TestNew_ClampsTinyMass(t *testing.T) {
	// log(25/100)+1 is negative
	e, err := New(geom.V(0, 0), geom.V(5, 5), "s", &Box{})
	require.NoError(t, err)
	assert.Equal(t, MinMass, e.Mass)
}

func TestNew_InitialState(t *testing.T) {
	e, err := New(geom.V(3, 4), geom.V(30, 20), "crate", &Box{})
	require.NoError(t, err)

	assert.Equal(t, geom.R(3, 4, 30, 20), e.Bounds)
	assert.Equal(t, Sprite("crate"), e.Sprite)
	assert.Equal(t, geom.Vec{}, e.Vel)
	assert.Equal(t, geom.Vec{}, e.Acc)
	assert.False(t, e.Grounded)
	assert.False(t, e.Remove)
	assert.Equal(t, 0, e.Contacts())
	assert.Equal(t, KindBox, e.Kind())
}

func TestConstructors_SizesAndFlags(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name    string
		ctor    Constructor
		kind    Kind
		size    geom.Vec
		bounces bool
	}{
		{"player", NewPlayer, KindPlayer, p.PlayerSize, true},
		{"box", NewBox, KindBox, geom.V(p.BoxSize, p.BoxSize), true},
		{"brick", NewBrick, KindBrick, p.Tile, true},
		{"grass", NewGrass, KindGrass, p.Tile, true},
		{"platform", NewPlatform, KindPlatform, p.Tile, true},
		{"reverser", NewReverser, KindReverser, p.Tile, false},
		{"hazard", NewHazard, KindHazard, p.Tile, true},
		{"goal", NewGoal, KindGoal, p.GoalSize, false},
		{"walker", NewWalker, KindWalker, p.WalkerSize, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.ctor(geom.V(7, 9), Sprite(tt.name), &p)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, e.Kind())
			assert.Equal(t, tt.bounces, e.Bounces())
			assert.Equal(t, tt.size, e.Bounds.Size())
			assert.Equal(t, geom.V(7, 9), e.Bounds.Pos())
		})
	}
}

func TestConstructors_InitialVelocity(t *testing.T) {
	p := DefaultParams()
	p.WalkerSpeed = 2

	platform, err := NewPlatform(geom.V(0, 0), "p", &p)
	require.NoError(t, err)
	assert.Equal(t, geom.V(-1, 0), platform.Vel)

	walker, err := NewWalker(geom.V(0, 0), "w", &p)
	require.NoError(t, err)
	assert.Equal(t, geom.V(-2, 0), walker.Vel)
}

func TestConstructors_BadParams(t *testing.T) {
	p := DefaultParams()
	p.Tile = geom.V(0, 40)

	_, err := NewBrick(geom.V(0, 0), "b", &p)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
