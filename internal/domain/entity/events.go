package entity

// EventKind identifies what happened during a frame
type EventKind int

const (
	// EventStomp: the player landed on a walker and removed it
	EventStomp EventKind = iota
	// EventPlayerKilled: the player touched a hazard or walked into a walker
	EventPlayerKilled
	// EventGoalReached: the player collected the goal
	EventGoalReached
	// EventRemoved: an entity flagged for removal was dropped by Sweep
	EventRemoved
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventStomp:
		return "stomp"
	case EventPlayerKilled:
		return "player_killed"
	case EventGoalReached:
		return "goal_reached"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is emitted by reaction hooks and by Sweep for the game loop
// and the presentation layer.
type Event struct {
	Kind    EventKind
	Frame   int
	Subject EntityID
	Other   EntityID // zero when not applicable
	What    Kind     // kind of Subject
}

// eventQueue is a FIFO queue drained once per frame by the owner.
type eventQueue struct {
	items []Event
}

func (q *eventQueue) push(evt Event) {
	q.items = append(q.items, evt)
}

func (q *eventQueue) drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
