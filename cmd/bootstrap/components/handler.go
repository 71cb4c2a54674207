package components

import (
	"shopfront/internal/handler"
	"shopfront/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewNotificationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
