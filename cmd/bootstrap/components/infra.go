package components

import (
	"log/slog"

	"venue-booking-web/internal/infra/checkout"
	"venue-booking-web/internal/infra/metrics"
	"venue-booking-web/internal/infra/querycache"
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/usecase/booking"
	"venue-booking-web/internal/usecase/commands"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		metrics.New,
		fx.Annotate(
			NewQueryCache,
			fx.As(fx.Self()),
			fx.As(new(commands.CacheInvalidator)),
			fx.As(new(booking.CacheInvalidator)),
		),
		NewCheckoutBroker,
	),
)

func NewQueryCache(cfg config.Config, clk clock.Clock, m *metrics.Metrics) *querycache.Cache {
	return querycache.New(cfg.Cache, clk, m)
}

func NewCheckoutBroker(cfg config.Config, logger *slog.Logger) *checkout.Broker {
	return checkout.NewBroker(cfg.Checkout, nil, logger)
}
