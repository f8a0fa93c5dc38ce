package entity

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint32

// Kind identifies an entity variant
type Kind int

const (
	KindPlayer Kind = iota
	KindBox
	KindBrick
	KindGrass
	KindPlatform
	KindReverser
	KindHazard
	KindGoal
	KindWalker
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBox:
		return "box"
	case KindBrick:
		return "brick"
	case KindGrass:
		return "grass"
	case KindPlatform:
		return "platform"
	case KindReverser:
		return "reverser"
	case KindHazard:
		return "hazard"
	case KindGoal:
		return "goal"
	case KindWalker:
		return "walker"
	default:
		return "unknown"
	}
}

// Anchored reports whether the kind is a plain static platform (brick or grass).
// Walkers only patrol on these.
func (k Kind) Anchored() bool {
	return k == KindBrick || k == KindGrass
}

// Sprite is an opaque handle to a display resource.
// The physics core never interprets it.
type Sprite string

// Input holds the player controls for the current frame
type Input struct {
	Left  bool
	Right bool
	Jump  bool // held, not edge-triggered
}
