package main

import (
	"context"
	"time"

	"webhook_bot/internal/modules/bybit"
	"webhook_bot/internal/modules/config"
	"webhook_bot/internal/modules/health"
	"webhook_bot/internal/modules/postgres"
	"webhook_bot/internal/modules/server"
	telegram "webhook_bot/internal/modules/telegram_bot"
	"webhook_bot/internal/modules/tracing"
	"webhook_bot/internal/modules/webhook"
	"webhook_bot/internal/runner"
	"webhook_bot/pkg/logger"
	pkgtracing "webhook_bot/pkg/tracing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const serviceName = "webhook_bot"

// newLogger поднимает zap по конфигу до старта остальных модулей.
func newLogger(cfg *config.Config) (fxevent.Logger, error) {
	if err := logger.Init(logger.Config{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	}); err != nil {
		return nil, err
	}
	return &fxevent.ZapLogger{Logger: logger.L()}, nil
}

func main() {
	logger.SetServiceName(serviceName)
	pkgtracing.SetServiceName(serviceName)
	defer logger.Sync()

	app := fx.New(
		fx.WithLogger(newLogger),
		fx.StartTimeout(30*time.Second),
		fx.Provide(
			func(lc fx.Lifecycle) context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				lc.Append(fx.Hook{
					OnStop: func(context.Context) error {
						cancel()
						return nil
					},
				})
				return ctx
			},
		),
		config.Module(),
		tracing.Module(),
		postgres.Module(),
		bybit.Module(),
		telegram.Module(),
		runner.Module(),
		server.Module(),
		health.Module(),
		webhook.Module(),
	)
	app.Run()
}
