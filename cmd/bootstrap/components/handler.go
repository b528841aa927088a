package components

import (
	"stitchcart/internal/handler"
	"stitchcart/internal/handler/api"
	"stitchcart/internal/handler/middleware"
	"stitchcart/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewCookieConfig,
		NewCartConfig,
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewCartHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCookieConfig(cfg config.Config) config.CookieConfig {
	return cfg.Cookie
}

func NewCartConfig(cfg config.Config) config.CartConfig {
	return cfg.Cart
}
