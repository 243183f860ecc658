package notify

import (
	"context"
	"errors"
	"testing"

	"webhook_bot/internal/models"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []tgbot.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbot.Chattable) (tgbot.Message, error) {
	f.sent = append(f.sent, c)
	return tgbot.Message{}, f.err
}

type fakeAccount struct {
	balance   decimal.Decimal
	positions []models.Position
	err       error
	symbol    string
}

func (a *fakeAccount) GetBalance(context.Context) (models.AccountBalance, error) {
	return models.AccountBalance{AvailableUSDT: a.balance}, a.err
}

func (a *fakeAccount) GetPositions(_ context.Context, symbol string) ([]models.Position, error) {
	a.symbol = symbol
	return a.positions, a.err
}

func newTestTelegram(acc Account) (*Telegram, *fakeSender) {
	s := &fakeSender{}
	return &Telegram{send: s, chatID: 42, acc: acc}, s
}

func TestTelegram_Send(t *testing.T) {
	tg, s := newTestTelegram(nil)

	require.NoError(t, tg.Send(context.Background(), "Лонг: BTCUSDT"))
	require.Len(t, s.sent, 1)
	msg, ok := s.sent[0].(tgbot.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "Лонг: BTCUSDT", msg.Text)

	s.err = errors.New("Too Many Requests")
	assert.ErrorContains(t, tg.Send(context.Background(), "x"), "telegram send")
}

func TestTelegram_Commands(t *testing.T) {
	acc := &fakeAccount{
		balance: decimal.RequireFromString("1000.456"),
		positions: []models.Position{{
			Symbol:        "BTCUSDT",
			Side:          models.PositionLong,
			Size:          decimal.RequireFromString("0.06"),
			AvgEntryPrice: decimal.RequireFromString("50000"),
		}},
	}
	tg, _ := newTestTelegram(acc)
	ctx := context.Background()

	text, ok := tg.handleCommand(ctx, "positions", " btcusdt ")
	require.True(t, ok)
	assert.Equal(t, "BTCUSDT", acc.symbol)
	assert.Equal(t, "📊 Открытые позиции:\n- BTCUSDT [LONG] size=0.06 @ 50000.0000", text)

	text, _ = tg.handleCommand(ctx, "positions", "")
	assert.Equal(t, "Использование: /positions BTCUSDT", text)

	text, _ = tg.handleCommand(ctx, "balance", "")
	assert.Equal(t, "💰 Доступно: 1000.46 USDT", text)

	_, ok = tg.handleCommand(ctx, "start", "")
	assert.False(t, ok)

	acc.positions = nil
	text, _ = tg.handleCommand(ctx, "positions", "ETHUSDT")
	assert.Equal(t, "📭 Открытых позиций по ETHUSDT нет", text)

	acc.err = errors.New("GetBalance http 502")
	text, _ = tg.handleCommand(ctx, "balance", "")
	assert.Contains(t, text, "Ошибка получения баланса")
}

func TestNewTelegram_RequiresCredentials(t *testing.T) {
	_, err := NewTelegram("", 42, nil)
	assert.Error(t, err)
	_, err = NewTelegram("token", 0, nil)
	assert.Error(t, err)
}

func TestStdout_Send(t *testing.T) {
	assert.NoError(t, NewStdout().Send(context.Background(), "hello"))
}
