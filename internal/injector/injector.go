//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/entitykit/internal/config"
	"github.com/zeusync/entitykit/internal/host"
)

// InitializeGroup wires the host loops from configuration.
func InitializeGroup(cfg config.Config) (*host.Group, func(), error) {
	wire.Build(ProvideLogger, ProvideRegistry, host.NewGroup)
	return nil, nil, nil
}
