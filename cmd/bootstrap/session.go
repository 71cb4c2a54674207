package bootstrap

import (
	"shopfront/internal/usecase"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		usecase.NewSession,
	),
)
