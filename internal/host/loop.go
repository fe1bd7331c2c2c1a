package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zeusync/entitykit/internal/config"
	"github.com/zeusync/entitykit/internal/core/observability/log"
	"github.com/zeusync/entitykit/internal/game/components"
	"github.com/zeusync/entitykit/pkg/ecs"
)

var ErrAlreadySpawned = errors.New("entities already spawned")

// Loop owns a set of entities and drives their Action/Update hooks once per
// tick. It is not safe for concurrent use.
type Loop struct {
	cfg      config.Config
	registry *ecs.Registry
	logger   log.Log

	entities []*ecs.Entity
	spawned  bool
	ticks    uint64
}

// New warms registry up with every component kind the host knows, so ids
// are fixed before any entity exists.
func New(cfg config.Config, registry *ecs.Registry, logger log.Log) *Loop {
	if logger == nil {
		logger = log.NewNop()
	}
	registry.Register(components.Kinds()...)
	return &Loop{
		cfg:      cfg,
		registry: registry,
		logger:   logger.Named("host"),
	}
}

// Spawn builds one prototype per entity spec and clones it Count times
// (zero counts as one). The last instance takes the prototype's components
// over instead of cloning them. On error nothing is kept.
func (l *Loop) Spawn() error {
	if l.spawned {
		return ErrAlreadySpawned
	}

	var spawned []*ecs.Entity
	fail := func(err error) error {
		for _, e := range spawned {
			e.Destroy()
		}
		return fmt.Errorf("spawn: %w", err)
	}

	for _, spec := range l.cfg.Entities {
		proto := ecs.NewEntity(l.registry)
		if err := components.Build(proto, spec); err != nil {
			proto.Destroy()
			return fail(err)
		}

		count := max(spec.Count, 1)
		kinds := proto.Len()
		for i := 0; i < count-1; i++ {
			e, err := proto.Clone()
			if err != nil {
				proto.Destroy()
				return fail(fmt.Errorf("entity %q: %w", spec.Name, err))
			}
			spawned = append(spawned, e)
		}
		spawned = append(spawned, proto.Move())

		l.logger.Debug("entities spawned",
			log.String("name", spec.Name),
			log.Int("count", count),
			log.Int("components", kinds),
		)
	}

	l.entities = spawned
	l.spawned = true
	l.logger.Info("spawn complete",
		log.Int("entities", len(l.entities)),
		log.Int("kinds", l.registry.Len()),
		log.Uint64("fingerprint", l.registry.Fingerprint()),
	)
	return nil
}

// Tick runs Action then Update on every entity, in spawn order.
func (l *Loop) Tick() {
	for _, e := range l.entities {
		e.Action()
		e.Update()
	}
	l.ticks++
}

// Run ticks at the configured interval until the configured tick count is
// reached or ctx is done. A zero interval ticks back to back.
func (l *Loop) Run(ctx context.Context) error {
	if !l.spawned {
		if err := l.Spawn(); err != nil {
			return err
		}
	}

	start := time.Now()
	limit := l.cfg.Loop.Ticks
	defer func() {
		l.logger.Info("loop stopped",
			log.Uint64("ticks", l.ticks),
			log.Duration("elapsed", time.Since(start)),
		)
	}()

	var tick <-chan time.Time
	if interval := l.cfg.Loop.Interval; interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for limit == 0 || l.ticks < limit {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		l.Tick()
	}
	return nil
}

func (l *Loop) Entities() []*ecs.Entity {
	return l.entities
}

func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Close destroys every entity.
func (l *Loop) Close() {
	for _, e := range l.entities {
		e.Destroy()
	}
	l.entities = nil
}
