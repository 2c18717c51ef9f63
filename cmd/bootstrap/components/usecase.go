package components

import (
	"log/slog"

	"venue-booking-web/internal/handler/web"
	"venue-booking-web/internal/infra/checkout"
	"venue-booking-web/internal/infra/metrics"
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/usecase/booking"
	"venue-booking-web/internal/usecase/commands"
	"venue-booking-web/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseBookingModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVenueQueries,
		queries.NewBookingQueries,
		queries.NewOwnerQueries,
		queries.NewAdminQueries,
		queries.NewProfileQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewOwnerCommands,
		commands.NewAdminCommands,
	),
)

var usecaseBookingModule = fx.Module("usecase/booking",
	fx.Provide(
		// The broker plays both widget and registrar for the flow.
		func(b *checkout.Broker) booking.Widget { return b },
		func(b *checkout.Broker) booking.Registrar { return b },
		fx.Annotate(
			NewBookingFlow,
			fx.As(new(booking.Booker)),
		),
		fx.Annotate(
			NewBookingRunner,
			fx.As(new(web.BookingRunner)),
		),
	),
)

func NewBookingFlow(b booking.Backend, w booking.Widget, cache booking.CacheInvalidator, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) (*booking.Flow, error) {
	loc, err := cfg.Time.Location()
	if err != nil {
		return nil, err
	}
	return booking.NewFlow(b, w, cache, cfg.Checkout, loc, m, logger), nil
}

func NewBookingRunner(flow booking.Booker, registrar booking.Registrar, cfg config.Config, clk clock.Clock, logger *slog.Logger) *booking.Runner {
	return booking.NewRunner(flow, registrar, cfg.Checkout, clk, logger)
}
