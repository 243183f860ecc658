package telegram

import (
	"context"

	"webhook_bot/internal/modules/config"
	"webhook_bot/internal/notify"
	"webhook_bot/internal/runner"
	"webhook_bot/pkg/logger"

	"go.uber.org/fx"
)

// NewTelegram возвращает nil, если бот не настроен или не поднялся:
// тогда уведомления уходят в лог.
func NewTelegram(cfg *config.Config, acc notify.Account) *notify.Telegram {
	if cfg.Telegram.Token == "" || cfg.Telegram.ChatID == 0 {
		logger.Warn("[TELEGRAM] token/chat not set, notifications go to stdout")
		return nil
	}
	tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID, acc)
	if err != nil {
		logger.Warn("[TELEGRAM] %v, notifications go to stdout", err)
		return nil
	}
	return tg
}

func NewNotifier(tg *notify.Telegram) runner.Notifier {
	if tg == nil {
		return notify.NewStdout()
	}
	return tg
}

func Module() fx.Option {
	return fx.Module("telegram",
		fx.Provide(
			NewTelegram, // *notify.Telegram, может быть nil
			NewNotifier, // runner.Notifier
		),
		// команды оператора через long-polling
		fx.Invoke(
			func(lc fx.Lifecycle, appCtx context.Context, cfg *config.Config, tg *notify.Telegram) {
				if tg == nil || !cfg.Telegram.Commands {
					return
				}
				lc.Append(fx.Hook{
					OnStart: func(context.Context) error {
						return tg.Start(appCtx)
					},
					OnStop: func(context.Context) error {
						tg.Stop()
						return nil
					},
				})
			},
		),
	)
}
