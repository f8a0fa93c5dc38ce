package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platcore/internal/domain/entity"
	"github.com/younwookim/platcore/internal/infrastructure/config"
)

// Single-column levels on a 40px wide screen: one tile per row
var (
	goalLevel  = &config.LevelConfig{ID: "goal", Layout: []string{"@", "O", "#"}}
	lavaLevel  = &config.LevelConfig{ID: "lava", Layout: []string{"@", "*"}}
	stompLevel = &config.LevelConfig{ID: "stomp", Layout: []string{"@", "^", "#"}}
	floorLevel = &config.LevelConfig{ID: "floor", Layout: []string{"@", "#"}}
)

func newSession(t *testing.T, levels ...*config.LevelConfig) *Session {
	t.Helper()
	s, err := New(Options{
		Levels:  levels,
		Params:  entity.DefaultParams(),
		ScreenW: 40,
		ScreenH: float64(40 * levels[0].Rows()),
	})
	require.NoError(t, err)
	return s
}

// tickUntil runs idle ticks until something other than Continue happens
func tickUntil(t *testing.T, s *Session, limit int) Outcome {
	t.Helper()
	for i := 0; i < limit; i++ {
		out, err := s.Tick(entity.Input{})
		require.NoError(t, err)
		if out != OutcomeContinue {
			return out
		}
	}
	return OutcomeContinue
}

func TestNew_NoLevels(t *testing.T) {
	_, err := New(Options{Params: entity.DefaultParams(), ScreenW: 800, ScreenH: 500})
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestNew_LoadsFirstLevel(t *testing.T) {
	s := newSession(t, floorLevel, goalLevel)

	assert.Equal(t, 1, s.LevelNumber())
	require.NotNil(t, s.Level())
	assert.Equal(t, "floor", s.Level().Config.ID)
	assert.Equal(t, entity.KindPlayer, s.Level().Player.Kind())
	assert.Equal(t, Stats{LevelReached: 1}, s.Stats())
}

func TestNew_BadLevel(t *testing.T) {
	p := entity.DefaultParams()
	p.BoxSize = 0

	_, err := New(Options{
		Levels:  []*config.LevelConfig{{ID: "boxes", Layout: []string{"="}}},
		Params:  p,
		ScreenW: 40,
		ScreenH: 40,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidSize)
}

func TestTick_Continue(t *testing.T) {
	s := newSession(t, floorLevel)

	for i := 0; i < 30; i++ {
		out, err := s.Tick(entity.Input{})
		require.NoError(t, err)
		require.Equal(t, OutcomeContinue, out)
	}

	assert.Equal(t, 30, s.Stats().Frames)
	assert.True(t, s.Level().Player.Grounded)
}

func TestTick_DeathReloadsLevel(t *testing.T) {
	s := newSession(t, lavaLevel)
	before := s.Level()

	out := tickUntil(t, s, 30)

	assert.Equal(t, OutcomeDied, out)
	assert.Equal(t, 1, s.Stats().Deaths)
	assert.Equal(t, 1, s.LevelNumber())
	assert.NotSame(t, before, s.Level(), "fresh world")
	assert.False(t, s.Level().Player.Remove)
	assert.Equal(t, 0, s.Level().World.Frame())
}

func TestTick_AdvanceThenFinish(t *testing.T) {
	s := newSession(t, goalLevel, goalLevel)

	out := tickUntil(t, s, 60)
	require.Equal(t, OutcomeAdvanced, out)
	assert.Equal(t, 2, s.LevelNumber())
	assert.Equal(t, 2, s.Stats().LevelReached)
	assert.False(t, s.Finished())

	out = tickUntil(t, s, 60)
	require.Equal(t, OutcomeFinished, out)
	assert.True(t, s.Finished())
	assert.Equal(t, 2, s.LevelNumber(), "stays on the last level")

	frames := s.Stats().Frames
	out, err := s.Tick(entity.Input{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeFinished, out)
	assert.Equal(t, frames, s.Stats().Frames, "finished sessions do not advance")
}

func TestTick_CountsStomps(t *testing.T) {
	s := newSession(t, stompLevel)

	out := tickUntil(t, s, 60)

	assert.Equal(t, OutcomeContinue, out)
	assert.Equal(t, 1, s.Stats().Stomps)
	assert.Equal(t, 0, s.Stats().Deaths)
	assert.Equal(t, 0, s.Level().World.CountKind(entity.KindWalker), "swept")
}

func TestRestart(t *testing.T) {
	s := newSession(t, floorLevel)
	for i := 0; i < 5; i++ {
		_, err := s.Tick(entity.Input{Right: true})
		require.NoError(t, err)
	}
	before := s.Level()

	require.NoError(t, s.Restart())

	assert.NotSame(t, before, s.Level())
	assert.Equal(t, 0, s.Stats().Deaths, "restart is not a death")
	assert.Equal(t, 5, s.Stats().Frames)
	assert.Equal(t, 1, s.LevelNumber())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "continue", OutcomeContinue.String())
	assert.Equal(t, "died", OutcomeDied.String())
	assert.Equal(t, "advanced", OutcomeAdvanced.String())
	assert.Equal(t, "finished", OutcomeFinished.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}
