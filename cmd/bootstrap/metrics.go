package bootstrap

import (
	"order-fulfillment/internal/pkg/metrics"
	"order-fulfillment/internal/usecase/commands"
	"order-fulfillment/internal/usecase/queries"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(commands.OrderRecorder)),
			fx.As(new(queries.QuoteRecorder)),
		),
	),
)
