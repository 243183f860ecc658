package journal

import (
	"context"

	"webhook_bot/internal/models"
	"webhook_bot/pkg/db"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const createTable = `
CREATE TABLE IF NOT EXISTS trade_journal (
	id             BIGSERIAL PRIMARY KEY,
	at             TIMESTAMPTZ NOT NULL,
	symbol         TEXT        NOT NULL,
	intent         TEXT        NOT NULL,
	side           TEXT        NOT NULL,
	order_id       TEXT        NOT NULL,
	order_link_id  TEXT        NOT NULL,
	qty            NUMERIC     NOT NULL,
	leverage       NUMERIC     NOT NULL,
	entry_price    NUMERIC     NOT NULL,
	avg_price      NUMERIC     NOT NULL,
	pnl            NUMERIC     NOT NULL,
	fee_total      NUMERIC     NOT NULL,
	net_pnl        NUMERIC     NOT NULL,
	pct            NUMERIC     NOT NULL,
	balance_before NUMERIC     NOT NULL,
	fills_reported BOOLEAN     NOT NULL
)`

const insertOutcome = `
INSERT INTO trade_journal (
	at, symbol, intent, side, order_id, order_link_id,
	qty, leverage, entry_price, avg_price, pnl, fee_total, net_pnl, pct, balance_before,
	fills_reported
) VALUES (
	$1, $2, $3, $4, $5, $6,
	$7::numeric, $8::numeric, $9::numeric, $10::numeric, $11::numeric, $12::numeric,
	$13::numeric, $14::numeric, $15::numeric,
	$16
)`

// PG: журнал сделок в Postgres. Только INSERT, пайплайн его не читает.
type PG struct {
	tx db.TxManager
}

func NewPG(tx db.TxManager) *PG {
	return &PG{tx: tx}
}

func (j *PG) EnsureSchema(ctx context.Context) error {
	if _, err := j.tx.Conn().Exec(ctx, createTable); err != nil {
		return errors.Wrap(err, "journal: create table")
	}
	return nil
}

func (j *PG) Record(ctx context.Context, o models.TradeOutcome) error {
	return j.tx.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		return insert(ctxTx, tx, o)
	})
}

func insert(ctx context.Context, conn db.Conn, o models.TradeOutcome) error {
	_, err := conn.Exec(ctx, insertOutcome,
		o.At, o.Symbol, string(o.Intent), string(o.Side), o.OrderID, o.LinkID,
		o.Qty.String(), o.Leverage.String(), o.EntryPrice.String(), o.AvgPrice.String(),
		o.PnL.String(), o.FeeTotal.String(), o.NetPnL.String(), o.Pct.String(),
		o.BalanceBefore.String(),
		o.FillsReported,
	)
	if err != nil {
		return errors.Wrapf(err, "journal: insert %s %s", o.Symbol, o.OrderID)
	}
	return nil
}

// Noop: журнал выключен (DATABASE_DSN не задан).
type Noop struct{}

func (Noop) Record(context.Context, models.TradeOutcome) error { return nil }
