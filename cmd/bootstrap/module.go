package bootstrap

import (
	"shopfront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	BackendModule,
	SessionModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WatcherModule,
)
