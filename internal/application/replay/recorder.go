package replay

import (
	"fmt"
	"time"

	"github.com/younwookim/platcore/internal/domain/entity"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
	restart   bool
}

// NewRecorder creates a new recorder for a run over the given levels
func NewRecorder(levels []string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Levels:    levels,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in entity.Input) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F: r.frame,
		L: in.Left,
		R: in.Right,
		J: in.Jump,
		X: r.restart,
	})
	r.frame++
	r.restart = false
}

// MarkRestart flags the next recorded frame as following a level restart
func (r *Recorder) MarkRestart() {
	if r.recording {
		r.restart = true
	}
}

// Save writes the replay data to a file.
// Files ending in .msgpack are binary, anything else is indented JSON.
func (r *Recorder) Save(filename string) error {
	return Save(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename(ext string) string {
	return fmt.Sprintf("replay_%s%s", time.Now().Format("20060102_150405"), ext)
}
