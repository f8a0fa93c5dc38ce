package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/platcore/internal/application/system"
	"github.com/younwookim/platcore/internal/domain/entity"
	"github.com/younwookim/platcore/internal/infrastructure/config"
)

// ErrNoLevels is returned when a session is created without levels
var ErrNoLevels = errors.New("no levels to play")

// Outcome is what a tick did to the session
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeDied             // player removed, level reloaded
	OutcomeAdvanced         // goal reached, next level loaded
	OutcomeFinished         // goal reached on the last level
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeDied:
		return "died"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Stats summarizes a run
type Stats struct {
	Frames       int
	Deaths       int
	Stomps       int
	LevelReached int
	Finished     bool
}

// Options configures a Session
type Options struct {
	Levels  []*config.LevelConfig
	Params  entity.Params
	ScreenW float64
	ScreenH float64
	Logger  *log.Logger // nil discards
}

// Session owns the level sequence and the running World. It reloads the
// level when the player dies and moves on when the goal is collected.
// A Session is not safe for concurrent use.
type Session struct {
	opts    Options
	logger  *log.Logger
	number  int // 1-based level number
	current *system.Level
	stats   Stats
}

// New creates a session and loads the first level
func New(opts Options) (*Session, error) {
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		opts:   opts,
		logger: logger,
	}
	if err := s.load(1); err != nil {
		return nil, err
	}
	return s, nil
}

// Tick advances the simulation by one frame
func (s *Session) Tick(in entity.Input) (Outcome, error) {
	if s.stats.Finished {
		return OutcomeFinished, nil
	}

	w := s.current.World
	w.Step(in)
	s.stats.Frames++
	s.countEvents(w.Drain())

	player := s.current.Player
	switch {
	case player.Remove:
		s.stats.Deaths++
		s.logger.Info("player died", "level", s.number, "deaths", s.stats.Deaths, "frame", s.stats.Frames)
		if err := s.load(s.number); err != nil {
			return OutcomeContinue, err
		}
		return OutcomeDied, nil

	case s.playerBehavior().NextLevel():
		if s.number == len(s.opts.Levels) {
			s.stats.Finished = true
			s.logger.Info("all levels complete", "frames", s.stats.Frames, "deaths", s.stats.Deaths)
			return OutcomeFinished, nil
		}
		s.logger.Info("level complete", "level", s.number, "frame", s.stats.Frames)
		if err := s.load(s.number + 1); err != nil {
			return OutcomeContinue, err
		}
		return OutcomeAdvanced, nil
	}

	w.Sweep()
	s.countEvents(w.Drain())
	return OutcomeContinue, nil
}

// Restart reloads the current level without counting a death
func (s *Session) Restart() error {
	s.logger.Info("restart", "level", s.number)
	return s.load(s.number)
}

// Level returns the running level
func (s *Session) Level() *system.Level { return s.current }

// LevelNumber returns the 1-based number of the running level
func (s *Session) LevelNumber() int { return s.number }

// Stats returns the run statistics so far
func (s *Session) Stats() Stats { return s.stats }

// Finished reports whether the last level was completed
func (s *Session) Finished() bool { return s.stats.Finished }

func (s *Session) load(number int) error {
	cfg := s.opts.Levels[number-1]
	lvl, err := system.BuildLevel(cfg, s.opts.Params, s.opts.ScreenW, s.opts.ScreenH)
	if err != nil {
		return fmt.Errorf("failed to load level %d: %w", number, err)
	}

	s.current = lvl
	s.number = number
	s.stats.LevelReached = max(s.stats.LevelReached, number)
	s.logger.Info("level loaded", "level", number, "id", cfg.ID, "entities", lvl.World.Len())
	return nil
}

func (s *Session) playerBehavior() *entity.Player {
	return s.current.Player.Behavior().(*entity.Player)
}

func (s *Session) countEvents(events []entity.Event) {
	if len(events) == 0 {
		return
	}
	for _, evt := range events {
		if evt.Kind == entity.EventStomp {
			s.stats.Stomps++
		}
	}
	s.logger.Debug("events", "frame", s.stats.Frames, "count", len(events))
}
