package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/entitykit/internal/config"
	"github.com/zeusync/entitykit/pkg/ecs"
)

func newRegistry() *ecs.Registry {
	r := ecs.NewRegistry()
	r.Register(Kinds()...)
	return r
}

func TestKindsOrder(t *testing.T) {
	r := newRegistry()

	assert.Equal(t, ecs.ComponentID(0), ecs.ID[*Position](r))
	assert.Equal(t, ecs.ComponentID(1), ecs.ID[*Velocity](r))
	assert.Equal(t, ecs.ComponentID(2), ecs.ID[*Health](r))
}

func TestVelocityMovesPosition(t *testing.T) {
	e := ecs.NewEntity(newRegistry())
	_, err := ecs.Add(e, &Position{})
	require.NoError(t, err)
	_, err = ecs.Add(e, &Velocity{DX: 1, DY: 2})
	require.NoError(t, err)

	e.Update()
	pos, err := ecs.Get[*Position](e)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pos.X)
	assert.Equal(t, 2.0, pos.Y)

	e.Update()
	assert.Equal(t, 2.0, pos.X)
	assert.Equal(t, 4.0, pos.Y)
}

func TestVelocityWithoutPosition(t *testing.T) {
	e := ecs.NewEntity(newRegistry())
	_, err := ecs.Add(e, &Velocity{DX: 1})
	require.NoError(t, err)

	assert.NotPanics(t, e.Update)
	assert.False(t, ecs.Has[*Position](e))
}

func TestHealth(t *testing.T) {
	_, err := NewHealth(0, 1)
	assert.ErrorIs(t, err, ErrInvalidHealth)

	h, err := NewHealth(3, 2)
	require.NoError(t, err)
	h.Action()
	assert.Equal(t, 1.0, h.Current)
	h.Action()
	assert.Equal(t, 0.0, h.Current)
	assert.False(t, h.Alive())

	regen := &Health{Current: 9, Max: 10, Decay: -5}
	regen.Action()
	assert.Equal(t, 10.0, regen.Current)
}

func TestCloneIsIndependent(t *testing.T) {
	e := ecs.NewEntity(newRegistry())
	_, err := ecs.Add(e, &Position{X: 1})
	require.NoError(t, err)
	_, err = ecs.Add(e, &Health{Current: 5, Max: 5})
	require.NoError(t, err)

	cp, err := e.Clone()
	require.NoError(t, err)
	h, err := ecs.Get[*Health](cp)
	require.NoError(t, err)
	h.Current = 1

	orig, err := ecs.Get[*Health](e)
	require.NoError(t, err)
	assert.Equal(t, 5.0, orig.Current)
	assert.Same(t, cp, h.Entity())
}

func TestBuild(t *testing.T) {
	e := ecs.NewEntity(newRegistry())
	err := Build(e, config.EntitySpec{
		Name:     "walker",
		Position: &config.Vector{X: 1, Y: 1},
		Velocity: &config.Vector{X: 2},
		Health:   &config.HealthConfig{Max: 4, Decay: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, e.Len())

	h, err := ecs.Get[*Health](e)
	require.NoError(t, err)
	assert.Equal(t, 4.0, h.Current)
}

func TestBuild_HealthFailure(t *testing.T) {
	e := ecs.NewEntity(newRegistry())
	err := Build(e, config.EntitySpec{
		Name:   "broken",
		Health: &config.HealthConfig{Max: -1},
	})
	assert.ErrorIs(t, err, ErrInvalidHealth)
	assert.False(t, ecs.Has[*Health](e))
	assert.Zero(t, e.Len())
}
