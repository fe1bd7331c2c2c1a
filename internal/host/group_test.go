package host

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/entitykit/internal/config"
	"github.com/zeusync/entitykit/internal/core/observability/log"
	"github.com/zeusync/entitykit/internal/game/components"
	"github.com/zeusync/entitykit/pkg/ecs"
)

func TestGroup_Run(t *testing.T) {
	cfg := testConfig()
	cfg.Loop.Shards = 4
	r := ecs.NewRegistry()
	g := NewGroup(cfg, r, log.NewNop())
	require.Len(t, g.Loops(), 4)

	require.NoError(t, g.Run(context.Background()))

	seen := make(map[*ecs.Entity]struct{})
	for _, l := range g.Loops() {
		assert.Equal(t, uint64(3), l.Ticks())
		require.Len(t, l.Entities(), 3)
		for _, e := range l.Entities() {
			seen[e] = struct{}{}
			assert.Same(t, r, e.Registry())
		}
		pos, err := ecs.Get[*components.Position](l.Entities()[0])
		require.NoError(t, err)
		assert.Equal(t, 3.0, pos.X)
	}
	assert.Len(t, seen, 12, "shards never share entities")
	assert.Equal(t, len(components.Kinds()), r.Len())
}

func TestGroup_RunCancelled(t *testing.T) {
	cfg := testConfig()
	cfg.Loop.Shards = 2
	cfg.Loop.Ticks = 0
	cfg.Loop.Interval = time.Millisecond
	g := NewGroup(cfg, ecs.NewRegistry(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	assert.NoError(t, g.Run(ctx))
}

func TestGroup_SpawnFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Loop.Shards = 2
	cfg.Entities = append(cfg.Entities, config.EntitySpec{Name: "bad", Health: &config.HealthConfig{}})
	g := NewGroup(cfg, ecs.NewRegistry(), nil)

	assert.ErrorIs(t, g.Spawn(), components.ErrInvalidHealth)
	assert.ErrorIs(t, g.Run(context.Background()), components.ErrInvalidHealth)

	g.Close()
	for _, l := range g.Loops() {
		assert.Empty(t, l.Entities())
	}
}
