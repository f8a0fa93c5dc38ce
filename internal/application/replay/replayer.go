package replay

import (
	"github.com/younwookim/platcore/internal/application/session"
	"github.com/younwookim/platcore/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (entity.Input, bool) {
	fi, ok := r.NextFrame()
	return fi.Input(), ok
}

// NextFrame returns the raw recorded frame and advances
func (r *Replayer) NextFrame() (FrameInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return FrameInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Levels returns the level IDs the replay was recorded on
func (r *Replayer) Levels() []string {
	return r.data.Levels
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Run feeds every remaining recorded frame into the session, restarting
// the level where the recording says so and stopping early once the last
// level is complete. Returns the session stats.
func Run(s *session.Session, r *Replayer) (session.Stats, error) {
	if r.TotalFrames() == 0 {
		return s.Stats(), ErrNoFrames
	}

	for {
		fi, ok := r.NextFrame()
		if !ok {
			break
		}
		if fi.X {
			if err := s.Restart(); err != nil {
				return s.Stats(), err
			}
		}
		out, err := s.Tick(fi.Input())
		if err != nil {
			return s.Stats(), err
		}
		if out == session.OutcomeFinished {
			break
		}
	}
	return s.Stats(), nil
}
