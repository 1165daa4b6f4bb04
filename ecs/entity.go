package ecs

import "fmt"

// Entity identifies a world object. The low 32 bits are a slot index,
// the high 32 bits a generation that increments when the slot is
// reused, so stale handles to destroyed entities stay detectable. The
// zero value is never a live entity.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDMask = 1<<32 - 1

func makeEntity(id entityID, gen generation) Entity {
	return Entity(id) | Entity(gen)<<32
}

func (e Entity) id() entityID {
	return entityID(e & entityIDMask)
}

func (e Entity) generation() generation {
	return generation(e >> 32)
}

// Valid reports whether e could refer to an entity at all. It does not
// check liveness; use World.IsAlive for that.
func (e Entity) Valid() bool {
	return e.id() != 0
}

func (e Entity) String() string {
	return fmt.Sprintf("entity %d@%d", e.id(), e.generation())
}
