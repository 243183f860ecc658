package tracing

import (
	"context"

	"webhook_bot/internal/modules/config"
	"webhook_bot/pkg/logger"
	"webhook_bot/pkg/tracing"

	"github.com/opentracing/opentracing-go"
	"go.uber.org/fx"
)

func NewTracer(lc fx.Lifecycle, cfg *config.Config) (opentracing.Tracer, error) {
	tracer, closer, err := tracing.InitTracer(tracing.Config{
		Enabled: cfg.Tracing.Enabled,
		Host:    cfg.Tracing.Host,
		Port:    cfg.Tracing.Port,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Tracing.Enabled {
		logger.Info("[TRACING] jaeger agent %s:%d", cfg.Tracing.Host, cfg.Tracing.Port)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			closer()
			return nil
		},
	})
	return tracer, nil
}

func Module() fx.Option {
	return fx.Module("tracing",
		fx.Provide(NewTracer),
		// трейсер глобальный, его достаточно поднять
		fx.Invoke(func(opentracing.Tracer) {}),
	)
}
