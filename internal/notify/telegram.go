package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"webhook_bot/internal/models"
	"webhook_bot/pkg/logger"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

// Account: чтение состояния аккаунта для команд оператора.
type Account interface {
	GetBalance(ctx context.Context) (models.AccountBalance, error)
	GetPositions(ctx context.Context, symbol string) ([]models.Position, error)
}

type sender interface {
	Send(c tgbot.Chattable) (tgbot.Message, error)
}

// Telegram: уведомления в один чат + команды /positions и /balance из него же.
type Telegram struct {
	bot    *tgbot.BotAPI
	send   sender
	chatID int64
	acc    Account

	mu      sync.Mutex
	running bool
}

func NewTelegram(token string, chatID int64, acc Account) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return nil, errors.New("telegram: token and chat id are required")
	}
	b, err := tgbot.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "telegram: init bot")
	}
	return &Telegram{
		bot:    b,
		send:   b,
		chatID: chatID,
		acc:    acc,
	}, nil
}

func (t *Telegram) Send(_ context.Context, text string) error {
	if _, err := t.send.Send(tgbot.NewMessage(t.chatID, text)); err != nil {
		return errors.Wrap(err, "telegram send")
	}
	return nil
}

// Start: long-polling, принимаются только команды из настроенного чата.
func (t *Telegram) Start(ctx context.Context) error {
	if t.bot == nil || t.acc == nil {
		return nil
	}
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return nil
	}
	t.running = true
	t.mu.Unlock()

	u := tgbot.NewUpdate(0)
	u.Timeout = 30
	u.AllowedUpdates = []string{"message"}

	updates := t.bot.GetUpdatesChan(u)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case upd, ok := <-updates:
				if !ok {
					return
				}
				msg := upd.Message
				if msg == nil || msg.Chat == nil || msg.Chat.ID != t.chatID || !msg.IsCommand() {
					continue
				}
				go t.reply(ctx, msg.Command(), msg.CommandArguments())
			}
		}
	}()
	logger.Info("[TELEGRAM] commands enabled for chat %d", t.chatID)
	return nil
}

func (t *Telegram) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running && t.bot != nil {
		t.bot.StopReceivingUpdates()
	}
	t.running = false
}

func (t *Telegram) reply(ctx context.Context, cmd, args string) {
	text, ok := t.handleCommand(ctx, cmd, args)
	if !ok {
		return
	}
	if err := t.Send(ctx, text); err != nil {
		logger.Warn("[TELEGRAM] reply /%s: %v", cmd, err)
	}
}

func (t *Telegram) handleCommand(ctx context.Context, cmd, args string) (string, bool) {
	switch cmd {
	case "positions":
		return t.handlePositions(ctx, strings.ToUpper(strings.TrimSpace(args))), true
	case "balance":
		return t.handleBalance(ctx), true
	default:
		return "", false
	}
}

// /positions SYMBOL: Bybit v5 требует символ для linear.
func (t *Telegram) handlePositions(ctx context.Context, symbol string) string {
	if symbol == "" {
		return "Использование: /positions BTCUSDT"
	}
	positions, err := t.acc.GetPositions(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("❗️ Ошибка получения позиций: %v", err)
	}
	if len(positions) == 0 {
		return fmt.Sprintf("📭 Открытых позиций по %s нет", symbol)
	}

	var b strings.Builder
	b.WriteString("📊 Открытые позиции:\n")
	for _, p := range positions {
		fmt.Fprintf(&b, "- %s [%s] size=%s @ %s\n",
			p.Symbol, strings.ToUpper(string(p.Side)), p.Size, p.AvgEntryPrice.StringFixed(4))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (t *Telegram) handleBalance(ctx context.Context) string {
	bal, err := t.acc.GetBalance(ctx)
	if err != nil {
		return fmt.Sprintf("❗️ Ошибка получения баланса: %v", err)
	}
	return fmt.Sprintf("💰 Доступно: %s USDT", bal.AvailableUSDT.StringFixed(2))
}
