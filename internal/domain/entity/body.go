package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/platcore/internal/domain/geom"
)

// MinMass is the floor applied to the derived mass.
// log(area/100)+1 drops to zero for areas below ~37 square pixels.
const MinMass = 0.01

// ErrInvalidSize is returned when an entity is constructed with a non-positive area
var ErrInvalidSize = errors.New("entity size must be positive")

// Behavior is the per-variant logic plugged into an Entity
type Behavior interface {
	Kind() Kind
	// Bounces reports whether overlapping this variant causes positional
	// and velocity correction rather than a pass-through notification.
	Bounces() bool
	// Update advances the entity by one frame.
	Update(e *Entity, w *World)
	// OnCollision is the reaction hook, called once per resolved overlap.
	OnCollision(e, other *Entity, c Collision, w *World)
}

// GravityOverrider is implemented by behaviors that replace the default
// gravity step of Integrate.
type GravityOverrider interface {
	AddGravity(e *Entity, p *Params)
}

// Constructor builds a variant at pos with its display handle.
// All New* variant constructors have this signature.
type Constructor func(pos geom.Vec, sprite Sprite, p *Params) (*Entity, error)

// Entity is the physical state shared by every movable or static object.
// Variants differ only in the attached Behavior.
type Entity struct {
	ID     EntityID
	Sprite Sprite

	Bounds   geom.Rect
	Vel, Acc geom.Vec
	Mass     float64

	Grounded bool // set by the last resolution pass
	Remove   bool // pending removal, honored by World.Sweep

	contacts map[*Entity]struct{}
	behavior Behavior
}

// New creates an entity at pos with the given size and behavior.
// Mass is derived once from the area and never changes afterwards.
func New(pos, size geom.Vec, sprite Sprite, b Behavior) (*Entity, error) {
	area := size.X * size.Y
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%s %vx%v: %w", b.Kind(), size.X, size.Y, ErrInvalidSize)
	}
	return &Entity{
		Sprite:   sprite,
		Bounds:   geom.R(pos.X, pos.Y, size.X, size.Y),
		Mass:     massFor(area),
		contacts: make(map[*Entity]struct{}),
		behavior: b,
	}, nil
}

func massFor(area float64) float64 {
	m := math.Log(area/100) + 1
	if m < MinMass || math.IsNaN(m) {
		return MinMass
	}
	return m
}

// Kind returns the variant of the entity
func (e *Entity) Kind() Kind { return e.behavior.Kind() }

// Bounces reports whether the variant is bounce-capable
func (e *Entity) Bounces() bool { return e.behavior.Bounces() }

// Behavior returns the attached variant logic
func (e *Entity) Behavior() Behavior { return e.behavior }

// Update advances the entity one frame against the world
func (e *Entity) Update(w *World) { e.behavior.Update(e, w) }

// HasContact reports whether this entity resolved against o this frame.
// Contacts are keyed by identity, so entities outside any World work too.
func (e *Entity) HasContact(o *Entity) bool {
	_, ok := e.contacts[o]
	return ok
}

// Contacts returns the number of entities resolved against this frame
func (e *Entity) Contacts() int { return len(e.contacts) }

func (e *Entity) addContact(o *Entity) {
	e.contacts[o] = struct{}{}
}

func (e *Entity) clearContacts() {
	clear(e.contacts)
}
