package bootstrap

import (
	"shopfront/internal/infra/backend"
	"shopfront/internal/pkg/config"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewBackendClient,
	),
)

func NewBackendClient(cfg config.Config) (*backend.Client, error) {
	return backend.NewClient(cfg.Backend)
}
