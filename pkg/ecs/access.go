package ecs

import "reflect"

// Add attaches c as the kind T, replacing and destroying any T already on e.
// It returns c itself. When T is an interface type, the kind is c's dynamic
// type.
func Add[T Component](e *Entity, c T) (T, error) {
	var zero T
	if isNil(c) {
		return zero, ErrNilComponent
	}
	id := e.registry.IDFor(kindOf(c))
	if err := e.install(id, c); err != nil {
		return zero, err
	}
	return c, nil
}

// AddFunc runs build and attaches its result like Add. An error from build
// is returned as is and e is left untouched.
func AddFunc[T Component](e *Entity, build func() (T, error)) (T, error) {
	c, err := build()
	if err != nil {
		var zero T
		return zero, err
	}
	return Add(e, c)
}

// Has reports whether a T is attached to e.
func Has[T Component](e *Entity) bool {
	if e == nil {
		return false
	}
	return e.components.at(ID[T](e.registry)) != nil
}

// Get returns the attached T, or a *LookupError if there is none.
// A detached component asking its nil owner gets ErrNilEntity.
func Get[T Component](e *Entity) (T, error) {
	if e == nil {
		var zero T
		return zero, ErrNilEntity
	}
	kind := reflect.TypeFor[T]()
	id := e.registry.IDFor(kind)
	if c, ok := e.components.at(id).(T); ok {
		return c, nil
	}
	var zero T
	return zero, &LookupError{Entity: e.id, Kind: kind, ID: id}
}

// Remove detaches and destroys the attached T. It reports whether one was
// attached.
func Remove[T Component](e *Entity) bool {
	return e.detach(ID[T](e.registry))
}

func kindOf[T Component](c T) reflect.Type {
	kind := reflect.TypeFor[T]()
	if kind.Kind() == reflect.Interface {
		return reflect.TypeOf(c)
	}
	return kind
}
