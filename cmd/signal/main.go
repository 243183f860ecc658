package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"webhook_bot/internal/models"
	"webhook_bot/internal/modules/bybit"
	"webhook_bot/internal/modules/config"
	"webhook_bot/internal/modules/postgres"
	telegram "webhook_bot/internal/modules/telegram_bot"
	"webhook_bot/internal/runner"
	"webhook_bot/pkg/logger"

	"github.com/bytedance/sonic"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// newLogger поднимает zap до конструкторов модулей; события fx не печатаем.
func newLogger(cfg *config.Config) (fxevent.Logger, error) {
	if err := logger.Init(logger.Config{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	}); err != nil {
		return nil, err
	}
	return fxevent.NopLogger, nil
}

// Ручной прогон одного сигнала мимо вебхука:
//
//	go run ./cmd/signal -symbol BTCUSDT -side exit
func main() {
	symbol := flag.String("symbol", "", "symbol, e.g. BTCUSDT")
	side := flag.String("side", "", "buy | sell | exit")
	flag.Parse()

	logger.SetServiceName("webhook_bot_signal")
	defer logger.Sync()

	exitCode := 0
	app := fx.New(
		fx.WithLogger(newLogger),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module(),
		// команды Telegram обслуживает основной бот
		fx.Decorate(func(cfg *config.Config) *config.Config {
			c := *cfg
			c.Telegram.Commands = false
			return &c
		}),
		postgres.Module(),
		bybit.Module(),
		telegram.Module(),
		runner.Module(),
		fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner, r *runner.Runner) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						res := r.HandleSignal(context.Background(), models.ParseSignal(*symbol, *side))
						out, _ := sonic.ConfigStd.MarshalIndent(res, "", "  ")
						fmt.Println(string(out))
						if res.Status == models.StatusError {
							exitCode = 1
						}
						_ = sd.Shutdown()
					}()
					return nil
				},
			})
		}),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.Run()
	os.Exit(exitCode)
}
