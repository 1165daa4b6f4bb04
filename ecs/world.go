package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"

	"orrery/ecs/component"
)

// System updates a world each fixed-rate tick.
type System interface {
	Update(w *World)
}

// DrawSystem renders world state. Draw systems run in registration
// order after all update systems.
type DrawSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// World owns entities, component stores, and the event queue. Systems
// are held by a Scheduler, not the world itself, so callers control
// update order explicitly.
type World struct {
	entities entityStore
	stores   map[component.ID]*sparseSet
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. Returns
// false if the entity was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return true
}

// IsAlive reports whether the entity handle is current.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

func (w *World) store(id component.ID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent attaches a component value to an entity.
func (w *World) AddComponent(e Entity, id component.ID, v any) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if id == 0 {
		return component.ErrInvalidKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	w.store(id).set(e, v)
	return nil
}

// GetComponent returns the raw component value for an entity.
func (w *World) GetComponent(e Entity, id component.ID) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.store(id).get(e)
	if v == nil {
		return nil, false
	}
	return v, true
}

// HasComponent reports whether the entity carries the component kind.
func (w *World) HasComponent(e Entity, id component.ID) bool {
	return w.IsAlive(e) && w.store(id).has(e)
}

// RemoveComponent detaches a component kind from an entity.
func (w *World) RemoveComponent(e Entity, id component.ID) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(id).remove(e)
}

// Query returns entities carrying every listed component kind. The
// first kind's store drives iteration, so put the rarest kind first.
func (w *World) Query(ids ...component.ID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Entity, 0, len(w.store(ids[0]).entities()))
	for _, e := range w.store(ids[0]).entities() {
		match := true
		for _, id := range ids[1:] {
			if !w.store(id).has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity carrying the component kind.
func (w *World) First(id component.ID) (Entity, bool) {
	ents := w.store(id).entities()
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}
