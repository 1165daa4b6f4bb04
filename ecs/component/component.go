package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// ID identifies a component kind at runtime. IDs are allocated once at
// package init through NewHandle and never reused.
type ID uint32

var nextID atomic.Uint32

// Kind ties an ID to a component type.
type Kind[T any] struct {
	id ID
}

func (k Kind[T]) ID() ID {
	return k.id
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}

// Handle is the package-level registration point for a component type.
type Handle[T any] struct {
	kind Kind[T]
}

// NewHandle registers a new component kind.
func NewHandle[T any]() Handle[T] {
	return Handle[T]{kind: Kind[T]{id: ID(nextID.Add(1))}}
}

func (h Handle[T]) Kind() Kind[T] {
	return h.kind
}

func (h Handle[T]) ID() ID {
	return h.kind.id
}
