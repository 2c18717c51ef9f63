package components

import (
	"venue-booking-web/internal/handler"
	"venue-booking-web/internal/handler/web"
	"venue-booking-web/internal/infra/checkout"
	"venue-booking-web/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		web.NewTemplates,
		web.NewVenueHandler,
		NewCheckoutHandler,
		web.NewAuthHandler,
		web.NewBookingHandler,
		web.NewOwnerHandler,
		web.NewAdminHandler,
		web.NewProfileHandler,
		handler.NewCSRF,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCheckoutHandler(runner web.BookingRunner, broker *checkout.Broker, venues *web.VenueHandler, cfg config.Config) *web.CheckoutHandler {
	return web.NewCheckoutHandler(runner, broker, venues, cfg.Checkout)
}
