package ecs

import (
	"fmt"
	"reflect"
)

// table is the sparse component storage of one entity. Slot i holds the
// component whose kind has id i, or nil. It only ever grows.
type table struct {
	slots []Component
}

func (t *table) len() int {
	return len(t.slots)
}

func (t *table) at(id ComponentID) Component {
	if int(id) >= len(t.slots) {
		return nil
	}
	return t.slots[id]
}

// put installs c at id and returns the previous occupant.
func (t *table) put(id ComponentID, c Component) Component {
	if n := int(id) + 1; n > len(t.slots) {
		if n <= cap(t.slots) {
			t.slots = t.slots[:n]
		} else {
			grown := make([]Component, n, max(n, 2*cap(t.slots)))
			copy(grown, t.slots)
			t.slots = grown
		}
	}
	prev := t.slots[id]
	t.slots[id] = c
	return prev
}

// take vacates id and returns what was there.
func (t *table) take(id ComponentID) Component {
	if int(id) >= len(t.slots) {
		return nil
	}
	prev := t.slots[id]
	t.slots[id] = nil
	return prev
}

func (t *table) count() int {
	n := 0
	for _, c := range t.slots {
		if c != nil {
			n++
		}
	}
	return n
}

func (t *table) ids() []ComponentID {
	out := make([]ComponentID, 0, len(t.slots))
	for i, c := range t.slots {
		if c != nil {
			out = append(out, ComponentID(i))
		}
	}
	return out
}

// each visits occupied slots in ascending id order. The slot count is fixed
// when the walk starts; slot contents are read as the walk reaches them.
func (t *table) each(fn func(Component)) {
	n := len(t.slots)
	for i := 0; i < n && i < len(t.slots); i++ {
		if c := t.slots[i]; c != nil {
			fn(c)
		}
	}
}

// clone deep-copies every occupied slot into a table of the same length.
// Nothing is bound; on error the partial copy is discarded.
func (t *table) clone() (table, error) {
	out := make([]Component, len(t.slots))
	for i, c := range t.slots {
		if c == nil {
			continue
		}
		cp := c.Clone()
		if isNil(cp) {
			return table{}, fmt.Errorf("%w: %s", ErrNilClone, kindName(reflect.TypeOf(c)))
		}
		if reflect.TypeOf(cp) != reflect.TypeOf(c) {
			return table{}, fmt.Errorf("%w: %s cloned into %s",
				ErrCloneMismatch, kindName(reflect.TypeOf(c)), kindName(reflect.TypeOf(cp)))
		}
		out[i] = cp
	}
	return table{slots: out}, nil
}

// transfer hands every occupied slot to a new table of the same length and
// vacates the receiver, which keeps its length.
func (t *table) transfer() table {
	out := make([]Component, len(t.slots))
	copy(out, t.slots)
	clear(t.slots)
	return table{slots: out}
}

// drain vacates the table and returns the former occupants in id order.
func (t *table) drain() []Component {
	out := make([]Component, 0, len(t.slots))
	for i, c := range t.slots {
		if c != nil {
			out = append(out, c)
			t.slots[i] = nil
		}
	}
	return out
}
