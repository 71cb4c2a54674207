package components

import (
	"shopfront/internal/infra/backend"
	"shopfront/internal/infra/cartfile"
	"shopfront/internal/pkg/config"
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"
	"shopfront/internal/usecase/watch"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewCartStore,
		// Cart persistence
		fx.Annotate(
			func(s *cartfile.Store) *cartfile.Store { return s },
			fx.As(new(commands.CartStore)),
			fx.As(new(queries.CartLoader)),
		),
		// Backend gateway
		fx.Annotate(
			func(c *backend.Client) *backend.Client { return c },
			fx.As(new(commands.SaleGateway)),
			fx.As(new(queries.ProductLister)),
			fx.As(new(queries.OrderFetcher)),
			fx.As(new(watch.OrderFetcher)),
		),
	),
)

func NewCartStore(cfg config.Config) (*cartfile.Store, error) {
	path, err := cfg.Cart.ResolvePath()
	if err != nil {
		return nil, err
	}
	return cartfile.NewStore(path)
}
