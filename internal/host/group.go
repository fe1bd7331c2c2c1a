package host

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/entitykit/internal/config"
	"github.com/zeusync/entitykit/internal/core/observability/log"
	"github.com/zeusync/entitykit/pkg/ecs"
)

// Group runs several independent loops in parallel. The loops share the
// registry and nothing else.
type Group struct {
	loops  []*Loop
	logger log.Log
}

func NewGroup(cfg config.Config, registry *ecs.Registry, logger log.Log) *Group {
	if logger == nil {
		logger = log.NewNop()
	}
	n := max(cfg.Loop.Shards, 1)
	g := &Group{
		loops:  make([]*Loop, 0, n),
		logger: logger,
	}
	for i := 0; i < n; i++ {
		g.loops = append(g.loops, New(cfg, registry, logger.With(log.Int("shard", i))))
	}
	return g
}

func (g *Group) Loops() []*Loop {
	return g.loops
}

// Spawn spawns every loop's entities, one loop after the other.
func (g *Group) Spawn() error {
	for _, l := range g.loops {
		if err := l.Spawn(); err != nil {
			return err
		}
	}
	return nil
}

// Run runs every loop on its own goroutine. The first loop to fail cancels
// the others. Cancellation of ctx is not reported as an error.
func (g *Group) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, l := range g.loops {
		eg.Go(func() error {
			return l.Run(ctx)
		})
	}

	err := eg.Wait()
	if errors.Is(err, context.Canceled) {
		g.logger.Info("loops cancelled")
		return nil
	}
	return err
}

func (g *Group) Close() {
	for _, l := range g.loops {
		l.Close()
	}
}
