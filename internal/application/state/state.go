package state

// GameState is what the playing scene is doing
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Toggle flips between playing and paused. Complete stays complete.
func (s GameState) Toggle() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
