package ecs

import (
	"reflect"

	"github.com/google/uuid"
)

// Entity owns at most one component per kind. Entities are used through
// pointers; duplicate one with Clone/CopyFrom and relocate one with
// Move/MoveFrom, never by copying the struct.
type Entity struct {
	_ noCopy

	id         uuid.UUID
	registry   *Registry
	components table
}

type EntityOption func(*Entity)

// WithEntityID overrides the random id.
func WithEntityID(id uuid.UUID) EntityOption {
	return func(e *Entity) {
		e.id = id
	}
}

// NewEntity creates an empty entity resolving kinds through registry.
// A nil registry gives the entity a private one.
func NewEntity(registry *Registry, opts ...EntityOption) *Entity {
	if registry == nil {
		registry = NewRegistry()
	}
	e := &Entity{
		id:       uuid.New(),
		registry: registry,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Entity) ID() uuid.UUID {
	return e.id
}

func (e *Entity) String() string {
	return e.id.String()
}

func (e *Entity) Registry() *Registry {
	return e.registry
}

// Len is the number of components attached.
func (e *Entity) Len() int {
	return e.components.count()
}

// Slots is the length of the component table, occupied or not.
func (e *Entity) Slots() int {
	return e.components.len()
}

// Kinds lists the ids of attached components in ascending order.
func (e *Entity) Kinds() []ComponentID {
	return e.components.ids()
}

func (e *Entity) Has(id ComponentID) bool {
	return e.components.at(id) != nil
}

func (e *Entity) Lookup(id ComponentID) (Component, bool) {
	c := e.components.at(id)
	return c, c != nil
}

// Attach installs c under its dynamic type, replacing any component of the
// same kind.
func (e *Entity) Attach(c Component) (ComponentID, error) {
	if isNil(c) {
		return 0, ErrNilComponent
	}
	id := e.registry.IDFor(reflect.TypeOf(c))
	if err := e.install(id, c); err != nil {
		return 0, err
	}
	return id, nil
}

func (e *Entity) install(id ComponentID, c Component) error {
	if owner := c.Entity(); owner != nil && owner != e {
		return ErrComponentOwned
	}
	c.bind(e)
	if prev := e.components.put(id, c); prev != nil && prev != c {
		destroy(prev)
	}
	return nil
}

func (e *Entity) detach(id ComponentID) bool {
	prev := e.components.take(id)
	if prev == nil {
		return false
	}
	destroy(prev)
	return true
}

// Action calls Action on every attached component in ascending id order.
func (e *Entity) Action() {
	e.components.each(func(c Component) { c.Action() })
}

// Update calls Update on every attached component in ascending id order.
func (e *Entity) Update() {
	e.components.each(func(c Component) { c.Update() })
}

// Destroy destroys every attached component. The entity stays usable and
// empty afterwards.
func (e *Entity) Destroy() {
	for _, c := range e.components.drain() {
		destroy(c)
	}
}

// Clone returns a new entity holding deep copies of e's components.
func (e *Entity) Clone() (*Entity, error) {
	dst := NewEntity(e.registry)
	if err := dst.CopyFrom(e); err != nil {
		return nil, err
	}
	return dst, nil
}

// CopyFrom replaces e's components with deep copies of src's. The copy is
// complete before e is touched, so on error e is unchanged. Components e
// held before are destroyed.
func (e *Entity) CopyFrom(src *Entity) error {
	if src == nil {
		return ErrNilEntity
	}
	if e == src {
		return nil
	}
	if e.registry != src.registry {
		return ErrRegistryMismatch
	}

	copied, err := src.components.clone()
	if err != nil {
		return err
	}
	e.replace(copied)
	return nil
}

// Move returns a new entity that takes over e's components. e is left
// empty.
func (e *Entity) Move() *Entity {
	dst := NewEntity(e.registry)
	dst.replace(e.components.transfer())
	return dst
}

// MoveFrom takes over src's components, leaving every slot of src vacant.
// Components e held before are destroyed; the moved ones are not.
func (e *Entity) MoveFrom(src *Entity) error {
	if src == nil {
		return ErrNilEntity
	}
	if e == src {
		return nil
	}
	if e.registry != src.registry {
		return ErrRegistryMismatch
	}

	e.replace(src.components.transfer())
	return nil
}

func (e *Entity) replace(next table) {
	prev := e.components
	e.components = next
	e.components.each(func(c Component) { c.bind(e) })
	prev.each(destroy)
}

// noCopy trips go vet's copylocks check when an Entity is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
