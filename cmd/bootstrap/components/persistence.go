package components

import (
	"stitchcart/internal/infra/readstore"
	"stitchcart/internal/infra/repository"
	"stitchcart/internal/usecase/commands"
	"stitchcart/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Write-side repositories for commands
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
