package ecs

import (
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/entitykit/internal/core/observability/log"
)

// ComponentID identifies a component kind within one Registry.
// Ids are handed out in first-use order starting at 0 and never change.
type ComponentID uint32

// Registry assigns ComponentIDs to component kinds. Every entity resolves
// kinds through the registry it was created with, so entities that exchange
// components (copy, move) must share one.
//
// Registry is safe for concurrent use. Entities are not.
type Registry struct {
	mu     sync.RWMutex
	ids    map[reflect.Type]ComponentID
	kinds  []reflect.Type
	logger log.Log
}

type RegistryOption func(*Registry)

func WithLogger(logger log.Log) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		ids:    make(map[reflect.Type]ComponentID),
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IDFor returns the id of kind, minting the next one on first request.
func (r *Registry) IDFor(kind reflect.Type) ComponentID {
	r.mu.RLock()
	id, ok := r.ids[kind]
	r.mu.RUnlock()
	if ok {
		return id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok = r.ids[kind]; ok {
		return id
	}
	id = ComponentID(len(r.kinds))
	r.ids[kind] = id
	r.kinds = append(r.kinds, kind)

	r.logger.Debug("component kind registered",
		log.String("kind", kindName(kind)),
		log.Uint32("id", uint32(id)),
	)
	return id
}

// ID is the typed form of IDFor.
func ID[T any](r *Registry) ComponentID {
	return r.IDFor(reflect.TypeFor[T]())
}

// Lookup reports the id of kind without assigning one.
func (r *Registry) Lookup(kind reflect.Type) (ComponentID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.ids[kind]
	return id, ok
}

// Kind is the reverse of IDFor.
func (r *Registry) Kind(id ComponentID) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(id) >= len(r.kinds) {
		return nil, false
	}
	return r.kinds[id], true
}

// Kinds returns every known kind indexed by id.
func (r *Registry) Kinds() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reflect.Type, len(r.kinds))
	copy(out, r.kinds)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.kinds)
}

// Register assigns ids to kinds in argument order. Hosts call it once at
// startup so that ids do not depend on which code path touches a kind first.
func (r *Registry) Register(kinds ...reflect.Type) {
	for _, kind := range kinds {
		r.IDFor(kind)
	}
}

// Fingerprint hashes the kind names in id order. Two registries that were
// warmed up the same way report the same value.
func (r *Registry) Fingerprint() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h := xxhash.New()
	for _, kind := range r.kinds {
		_, _ = h.WriteString(kindName(kind))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// kindName is qualified by import path so that equally named types from
// different packages do not collide in Fingerprint.
func kindName(kind reflect.Type) string {
	if kind == nil {
		return "<nil>"
	}
	switch kind.Kind() {
	case reflect.Pointer:
		return "*" + kindName(kind.Elem())
	default:
		if kind.PkgPath() == "" || kind.Name() == "" {
			return kind.String()
		}
		return kind.PkgPath() + "." + kind.Name()
	}
}
