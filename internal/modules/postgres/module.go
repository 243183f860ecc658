package postgres

import (
	"context"
	"fmt"

	"webhook_bot/internal/journal"
	"webhook_bot/internal/modules/config"
	"webhook_bot/internal/runner"
	"webhook_bot/pkg/db"
	"webhook_bot/pkg/logger"

	"go.uber.org/fx"
)

// NewTxManager возвращает nil без DATABASE_DSN, журнал тогда выключен.
func NewTxManager(ctx context.Context, lc fx.Lifecycle, cfg *config.Config) (*db.PgTxManager, error) {
	if cfg.DB == "" {
		return nil, nil
	}
	pool, err := db.NewPool(ctx, db.PoolConfig{
		DSN:      cfg.DB,
		MaxConns: 4,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	m := db.NewPgTxManager(pool)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			m.Close()
			return nil
		},
	})
	return m, nil
}

func NewJournal(ctx context.Context, m *db.PgTxManager) (runner.Journal, error) {
	if m == nil {
		logger.Info("[JOURNAL] disabled")
		return journal.Noop{}, nil
	}
	j := journal.NewPG(m)
	if err := j.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	logger.Info("[JOURNAL] postgres enabled")
	return j, nil
}

func Module() fx.Option {
	return fx.Module("postgres",
		fx.Provide(
			NewTxManager, // *db.PgTxManager, может быть nil
			NewJournal,   // runner.Journal
		),
	)
}
