package component

import (
	"errors"
	"reflect"
	"strconv"
	"sync"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes a component store inside a world. Zero is never issued.
type ComponentID uint32

func (id ComponentID) String() string {
	if name, ok := kindNames.Load(id); ok {
		return name.(string)
	}
	return "component#" + strconv.FormatUint(uint64(id), 10)
}

// ComponentKind is the typed key for one component store.
type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

func (k ComponentKind[T]) String() string {
	return k.id.String()
}

// ComponentHandle is what each component file exports, e.g. SessionComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers T under a fresh id. Call it once per component type
// from a package-level var.
func NewComponent[T any]() ComponentHandle[T] {
	id := ComponentID(nextComponentID.Add(1))
	kindNames.Store(id, reflect.TypeFor[T]().Name())
	return ComponentHandle[T]{kind: ComponentKind[T]{id: id}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

var (
	nextComponentID atomic.Uint32
	kindNames       sync.Map
)
