package components

import (
	"log/slog"

	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/infra/metrics"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/usecase/booking"
	"venue-booking-web/internal/usecase/commands"
	"venue-booking-web/internal/usecase/queries"

	"go.uber.org/fx"
)

// GatewayModule exposes the backend client through the ports each use case declares.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewBackendClient,
			// Read side
			fx.As(new(queries.VenueReadStore)),
			fx.As(new(queries.SlotReadStore)),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.UserReadStore)),
			// Write side
			fx.As(new(commands.AuthGateway)),
			fx.As(new(commands.BookingWriter)),
			fx.As(new(commands.VenueWriter)),
			fx.As(new(commands.SlotWriter)),
			fx.As(new(commands.UserWriter)),
			// Booking flow
			fx.As(new(booking.Backend)),
		),
	),
)

func NewBackendClient(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *backend.Client {
	return backend.NewClient(cfg.Backend, m, logger)
}
