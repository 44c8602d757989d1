package components

import (
	"vmarket/internal/handler"
	"vmarket/internal/handler/api"
	"vmarket/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewPurchaseHandler,
		api.NewWalletHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
