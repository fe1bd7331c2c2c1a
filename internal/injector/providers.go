package injector

import (
	"github.com/zeusync/entitykit/internal/config"
	"github.com/zeusync/entitykit/internal/core/observability/log"
	"github.com/zeusync/entitykit/pkg/ecs"
)

// ProvideLogger builds the logger described by cfg. The cleanup flushes it.
func ProvideLogger(cfg config.Config) (log.Log, func(), error) {
	logger, err := cfg.Log.Logger()
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideRegistry(logger log.Log) *ecs.Registry {
	return ecs.NewRegistry(ecs.WithLogger(logger.Named("ecs")))
}
