package bootstrap

import (
	"venue-booking-web/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.InfraModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
