package replay

import "github.com/younwookim/platcore/internal/domain/entity"

// FormatVersion is written into every replay
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f" msgpack:"f"`                     // Frame number
	L bool `json:"l,omitempty" msgpack:"l,omitempty"` // Left
	R bool `json:"r,omitempty" msgpack:"r,omitempty"` // Right
	J bool `json:"j,omitempty" msgpack:"j,omitempty"` // Jump
	X bool `json:"x,omitempty" msgpack:"x,omitempty"` // level restarted before this frame
}

// Input converts the recorded frame back into simulation input
func (fi FrameInput) Input() entity.Input {
	return entity.Input{Left: fi.L, Right: fi.R, Jump: fi.J}
}

// ReplayData contains all data needed to replay a game session.
// The simulation is deterministic, so the level list and the inputs are
// enough to reproduce a run.
type ReplayData struct {
	Version   string       `json:"version" msgpack:"version"`
	Levels    []string     `json:"levels" msgpack:"levels"` // level IDs in play order
	StartTime string       `json:"startTime" msgpack:"startTime"`
	Frames    []FrameInput `json:"frames" msgpack:"frames"`
}
