package components

import (
	"stitchcart/internal/domain/cart"
	"stitchcart/internal/pkg/clock"
	"stitchcart/internal/pkg/config"
	"stitchcart/internal/pkg/errs"
	"stitchcart/internal/usecase"
	"stitchcart/internal/usecase/commands"
	"stitchcart/internal/usecase/queries"

	"go.uber.org/fx"
	"golang.org/x/text/currency"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCartPricing,
	NewCartCurrency,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewProductQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCartPricing(cfg config.Config) (cart.Pricing, error) {
	pricing, err := cart.NewPricing(cfg.Cart.TaxRate, cfg.Cart.FreeShippingThreshold, cfg.Cart.FlatShippingFee)
	if err != nil {
		return cart.Pricing{}, errs.Wrap(err, "invalid cart pricing configuration")
	}
	return pricing, nil
}

func NewCartCurrency(cfg config.Config) (currency.Unit, error) {
	unit, err := currency.ParseISO(cfg.Cart.Currency)
	if err != nil {
		return currency.Unit{}, errs.Wrap(err, "invalid cart currency configuration")
	}
	return unit, nil
}
