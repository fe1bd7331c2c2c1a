package ecs

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

var (
	ErrComponentNotFound = errors.New("component not found")
	ErrNilComponent      = errors.New("component is nil")
	ErrComponentOwned    = errors.New("component is owned by another entity")
	ErrNilClone          = errors.New("component clone returned nil")
	ErrCloneMismatch     = errors.New("component clone changed kind")
	ErrNilEntity         = errors.New("entity is nil")
	ErrRegistryMismatch  = errors.New("entities use different registries")
)

// LookupError reports a Get for a kind the entity does not currently hold.
// It matches ErrComponentNotFound under errors.Is.
type LookupError struct {
	Entity uuid.UUID
	Kind   reflect.Type
	ID     ComponentID
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %s (id %d) on entity %s", ErrComponentNotFound, kindName(e.Kind), e.ID, e.Entity)
}

func (e *LookupError) Unwrap() error {
	return ErrComponentNotFound
}
