package entity

import "slices"

// World is the explicit context every update and resolution runs against:
// the entity collection in update order, the current input, the tuning
// and the event queue. Resetting a level means building a new World.
type World struct {
	nextID   EntityID
	params   Params
	entities []*Entity
	index    map[EntityID]*Entity
	input    Input
	frame    int
	events   eventQueue
}

// NewWorld creates an empty world with a copy of the given tuning
func NewWorld(p Params) *World {
	return &World{
		nextID: 1, // 0 is "none"
		params: p,
		index:  make(map[EntityID]*Entity),
	}
}

// Params returns the world's tuning, or the defaults for a nil World
func (w *World) Params() *Params {
	if w == nil {
		p := DefaultParams()
		return &p
	}
	return &w.params
}

// Input returns the controls for the current frame
func (w *World) Input() Input { return w.input }

// Frame returns the number of the current (or last) step, starting at 1
func (w *World) Frame() int { return w.frame }

// Entities returns the collection in update order.
// The slice must not be modified by callers.
func (w *World) Entities() []*Entity {
	if w == nil {
		return nil
	}
	return w.entities
}

// Len returns the number of entities
func (w *World) Len() int { return len(w.entities) }

// Spawn assigns an ID and appends the entity to the end of the update order
func (w *World) Spawn(e *Entity) EntityID {
	w.register(e)
	w.entities = append(w.entities, e)
	return e.ID
}

// SpawnFront assigns an ID and places the entity first in the update order
func (w *World) SpawnFront(e *Entity) EntityID {
	w.register(e)
	w.entities = slices.Insert(w.entities, 0, e)
	return e.ID
}

func (w *World) register(e *Entity) {
	e.ID = w.nextID
	w.nextID++
	w.index[e.ID] = e
}

// Lookup returns the live entity with the given ID
func (w *World) Lookup(id EntityID) (*Entity, bool) {
	if id == 0 {
		return nil, false
	}
	e, ok := w.index[id]
	return e, ok
}

// Emit queues an event stamped with the current frame
func (w *World) Emit(evt Event) {
	if w == nil {
		return
	}
	evt.Frame = w.frame
	w.events.push(evt)
}

// Drain returns all queued events and clears the queue
func (w *World) Drain() []Event {
	return w.events.drain()
}

// Step runs one full tick: every entity is updated once, in order, against
// the whole collection. Removal flags are left for Sweep.
func (w *World) Step(in Input) {
	w.frame++
	w.input = in
	for _, e := range w.entities {
		e.Update(w)
	}
}

// Sweep drops every entity flagged for removal and returns their IDs.
// Must be called between frames, never from a reaction hook.
func (w *World) Sweep() []EntityID {
	var removed []EntityID
	w.entities = slices.DeleteFunc(w.entities, func(e *Entity) bool {
		if !e.Remove {
			return false
		}
		removed = append(removed, e.ID)
		delete(w.index, e.ID)
		w.events.push(Event{Kind: EventRemoved, Frame: w.frame, Subject: e.ID, What: e.Kind()})
		return true
	})
	return removed
}

// CountKind returns the number of live entities of kind k
func (w *World) CountKind(k Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind() == k {
			n++
		}
	}
	return n
}
