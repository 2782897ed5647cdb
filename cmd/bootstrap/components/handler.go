package components

import (
	"gearshare/internal/handler"
	"gearshare/internal/handler/api"
	"gearshare/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewGearHandler,
		api.NewBookingHandler,
		api.NewTrustHandler,
		api.NewReviewHandler,
		api.NewMessageHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
