package components

import (
	"fmt"

	"github.com/zeusync/entitykit/internal/config"
	"github.com/zeusync/entitykit/pkg/ecs"
)

// Build attaches the components named by spec to e. A failing constructor
// aborts the build; components attached before it stay on e.
func Build(e *ecs.Entity, spec config.EntitySpec) error {
	if spec.Position != nil {
		if _, err := ecs.Add(e, &Position{X: spec.Position.X, Y: spec.Position.Y}); err != nil {
			return fmt.Errorf("entity %q: position: %w", spec.Name, err)
		}
	}
	if spec.Velocity != nil {
		if _, err := ecs.Add(e, &Velocity{DX: spec.Velocity.X, DY: spec.Velocity.Y}); err != nil {
			return fmt.Errorf("entity %q: velocity: %w", spec.Name, err)
		}
	}
	if spec.Health != nil {
		_, err := ecs.AddFunc(e, func() (*Health, error) {
			return NewHealth(spec.Health.Max, spec.Health.Decay)
		})
		if err != nil {
			return fmt.Errorf("entity %q: health: %w", spec.Name, err)
		}
	}
	return nil
}
