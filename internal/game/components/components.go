package components

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/zeusync/entitykit/pkg/ecs"
)

var ErrInvalidHealth = errors.New("health max must be positive")

// Kinds is the warm-up order for the registry: Position gets id 0,
// Velocity id 1, Health id 2.
func Kinds() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[*Position](),
		reflect.TypeFor[*Velocity](),
		reflect.TypeFor[*Health](),
	}
}

type Position struct {
	ecs.Base
	X, Y float64
}

func (p *Position) Clone() ecs.Component {
	return &Position{X: p.X, Y: p.Y}
}

// Velocity moves the sibling Position by (DX, DY) on every Update.
type Velocity struct {
	ecs.Base
	DX, DY float64
}

func (v *Velocity) Clone() ecs.Component {
	return &Velocity{DX: v.DX, DY: v.DY}
}

func (v *Velocity) Update() {
	pos, err := ecs.Get[*Position](v.Entity())
	if err != nil {
		return
	}
	pos.X += v.DX
	pos.Y += v.DY
}

// Health loses Decay on every Action, clamped to [0, Max]. A negative Decay
// regenerates.
type Health struct {
	ecs.Base
	Current float64
	Max     float64
	Decay   float64
}

func NewHealth(maxHP, decay float64) (*Health, error) {
	if maxHP <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidHealth, maxHP)
	}
	return &Health{Current: maxHP, Max: maxHP, Decay: decay}, nil
}

func (h *Health) Clone() ecs.Component {
	return &Health{Current: h.Current, Max: h.Max, Decay: h.Decay}
}

func (h *Health) Action() {
	h.Current = min(h.Max, max(0, h.Current-h.Decay))
}

func (h *Health) Alive() bool {
	return h.Current > 0
}
