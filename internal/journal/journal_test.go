package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"webhook_bot/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	sql  string
	args []any
	err  error
}

func (f *fakeConn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func (f *fakeConn) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("not used")
}

func (f *fakeConn) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func TestInsert(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	o := models.TradeOutcome{
		Symbol:        "BTCUSDT",
		Intent:        models.IntentClose,
		Side:          models.SideSell,
		OrderID:       "ord-1",
		LinkID:        "link-1",
		Qty:           decimal.RequireFromString("0.06"),
		Leverage:      decimal.NewFromInt(3),
		EntryPrice:    decimal.NewFromInt(50000),
		AvgPrice:      decimal.NewFromInt(51000),
		PnL:           decimal.NewFromInt(60),
		FeeTotal:      decimal.RequireFromString("0.5"),
		NetPnL:        decimal.RequireFromString("59.5"),
		Pct:           decimal.RequireFromString("5.95"),
		BalanceBefore: decimal.NewFromInt(1000),
		FillsReported: true,
		At:            at,
	}

	conn := &fakeConn{}
	require.NoError(t, insert(context.Background(), conn, o))
	assert.Contains(t, conn.sql, "INSERT INTO trade_journal")
	require.Len(t, conn.args, 16)
	assert.Equal(t, at, conn.args[0])
	assert.Equal(t, "close", conn.args[2])
	assert.Equal(t, "Sell", conn.args[3])
	assert.Equal(t, "0.06", conn.args[6])
	assert.Equal(t, "59.5", conn.args[12])
	assert.Equal(t, true, conn.args[15])

	conn.err = errors.New("relation does not exist")
	assert.ErrorContains(t, insert(context.Background(), conn, o), "journal: insert BTCUSDT ord-1")
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Record(context.Background(), models.TradeOutcome{}))
}
