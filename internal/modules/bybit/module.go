package bybit

import (
	"webhook_bot/internal/modules/bybit/service"
	"webhook_bot/internal/notify"
	"webhook_bot/internal/runner"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("bybit",
		fx.Provide(
			service.NewClient, // func(*config.Config) (*service.Client, error)
		),
		// Адаптеры: *service.Client -> интерфейсы потребителей
		fx.Provide(
			func(c *service.Client) runner.Exchange { return c },
			func(c *service.Client) notify.Account { return c },
		),
	)
}
