package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPlayer, "player"},
		{KindBox, "box"},
		{KindBrick, "brick"},
		{KindGrass, "grass"},
		{KindPlatform, "platform"},
		{KindReverser, "reverser"},
		{KindHazard, "hazard"},
		{KindGoal, "goal"},
		{KindWalker, "walker"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestKind_Anchored(t *testing.T) {
	assert.True(t, KindBrick.Anchored())
	assert.True(t, KindGrass.Anchored())

	// Hazards and reversers anchor themselves but walkers don't patrol on them
	assert.False(t, KindHazard.Anchored())
	assert.False(t, KindReverser.Anchored())
	assert.False(t, KindPlatform.Anchored())
	assert.False(t, KindBox.Anchored())
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "stomp", EventStomp.String())
	assert.Equal(t, "player_killed", EventPlayerKilled.String())
	assert.Equal(t, "goal_reached", EventGoalReached.String())
	assert.Equal(t, "removed", EventRemoved.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}
