package components

import (
	"rental-marketplace/internal/handler"
	"rental-marketplace/internal/handler/api"
	"rental-marketplace/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewVendorHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
