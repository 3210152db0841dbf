package components

import (
	"hotel-quote-engine/internal/handler"
	"hotel-quote-engine/internal/handler/api"
	"hotel-quote-engine/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelHandler,
		api.NewQuoteHandler,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)
