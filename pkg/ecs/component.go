package ecs

import "reflect"

// Component is a unit of state and behavior attached to an Entity.
// Implementations embed Base and provide Clone; Action and Update are
// optional overrides.
type Component interface {
	// Action and Update are broadcast by Entity.Action and Entity.Update.
	Action()
	Update()

	// Clone returns an independent deep copy with no owner bound.
	// The copy must have the same concrete type as the receiver.
	Clone() Component

	// Entity is the owner, or nil while the component is not attached.
	Entity() *Entity

	bind(owner *Entity)
}

// Destroyer is implemented by components that need to release something
// when they leave their entity for good: replacement, removal, Entity.Destroy
// or being overwritten by CopyFrom/MoveFrom. Components relocated by a move
// are not destroyed.
type Destroyer interface {
	Destroy()
}

// Base carries the owner back-reference. Embed it by value.
type Base struct {
	owner *Entity
}

func (b *Base) Entity() *Entity {
	return b.owner
}

func (*Base) Action() {}

func (*Base) Update() {}

func (b *Base) bind(owner *Entity) {
	b.owner = owner
}

func destroy(c Component) {
	if d, ok := c.(Destroyer); ok {
		d.Destroy()
	}
	c.bind(nil)
}

func isNil(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
