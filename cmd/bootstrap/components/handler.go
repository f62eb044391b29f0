package components

import (
	"stayfinder/internal/handler"
	"stayfinder/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPropertyHandler,
		api.NewReviewHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
