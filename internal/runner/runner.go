package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"webhook_bot/internal/models"
	"webhook_bot/internal/modules/config"
	"webhook_bot/pkg/logger"
	"webhook_bot/pkg/tracing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Exchange: то, что runner'у нужно от биржи. Все вызовы блокирующие, без ретраев.
type Exchange interface {
	GetBalance(ctx context.Context) (models.AccountBalance, error)
	GetInstrument(ctx context.Context, symbol string) (models.InstrumentConstraints, error)
	GetLastPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	GetPositions(ctx context.Context, symbol string) ([]models.Position, error)
	SetLeverage(ctx context.Context, symbol string, buy, sell decimal.Decimal) error
	PlaceOrder(ctx context.Context, o models.Order) (string, error)
	GetExecutions(ctx context.Context, symbol, orderID string) ([]models.Execution, error)
}

type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Journal: журнал сделок только на запись. Решения по нему не принимаются.
type Journal interface {
	Record(ctx context.Context, o models.TradeOutcome) error
}

// rejection: ошибка, которую вернула сама биржа, а не транспорт.
type rejection interface {
	Rejected() bool
}

func isRejection(err error) bool {
	var rej rejection
	return errors.As(err, &rej) && rej.Rejected()
}

type Settings struct {
	Mode          string
	LongLeverage  decimal.Decimal
	ShortLeverage decimal.Decimal
}

func NewSettings(cfg *config.Config) Settings {
	return Settings{
		Mode:          cfg.Trading.Mode,
		LongLeverage:  decimal.NewFromFloat(cfg.Trading.LongLeverage),
		ShortLeverage: decimal.NewFromFloat(cfg.Trading.ShortLeverage),
	}
}

func (s Settings) leverageFor(side models.Side) decimal.Decimal {
	if side == models.SideSell {
		return s.ShortLeverage
	}
	return s.LongLeverage
}

func (s Settings) shortsEnabled() bool {
	return s.Mode != config.ModeLongOnly
}

// Runner прогоняет один сигнал через биржу. Состояния между запросами нет.
type Runner struct {
	settings Settings
	ex       Exchange
	n        Notifier
	j        Journal

	now       func() time.Time
	newLinkID func() string
}

func New(settings Settings, ex Exchange, n Notifier, j Journal) *Runner {
	return &Runner{
		settings:  settings,
		ex:        ex,
		n:         n,
		j:         j,
		now:       time.Now,
		newLinkID: func() string { return uuid.NewString() },
	}
}

func (r *Runner) HandleSignal(ctx context.Context, sig models.Signal) (res models.Result) {
	span, ctx := tracing.StartSpan(ctx, "runner.HandleSignal", map[string]string{
		"symbol": sig.Symbol,
		"intent": string(sig.Intent),
		"side":   string(sig.Side),
	})
	defer func() {
		var err error
		if res.Status == models.StatusError {
			err = errors.New(res.Reason)
		}
		tracing.Finish(span, err)
		metricSignals.WithLabelValues(intentLabel(sig.Intent), string(res.Status)).Inc()
	}()

	if sig.Symbol == "" {
		return ignored("missing field: symbol")
	}
	if strings.TrimSpace(sig.Raw) == "" {
		return ignored("missing field: side")
	}

	switch sig.Intent {
	case models.IntentOpen:
		if sig.Side == models.SideSell && !r.settings.shortsEnabled() {
			return ignored("shorts disabled in long_only mode")
		}
		logger.Info("[RUNNER] %s open %s", sig.Symbol, sig.Side)
		return r.open(ctx, sig)
	case models.IntentClose:
		logger.Info("[RUNNER] %s close", sig.Symbol)
		return r.close(ctx, sig)
	default:
		logger.Info("[RUNNER] %s ignored side=%q", sig.Symbol, sig.Raw)
		return ignored(fmt.Sprintf("unknown side %q", sig.Raw))
	}
}

func ignored(reason string) models.Result {
	return models.Result{Status: models.StatusIgnored, Reason: reason}
}

// abort пишет в лог, предупреждает оператора и возвращает error-результат.
func (r *Runner) abort(ctx context.Context, sig models.Signal, stage string, err error) models.Result {
	reason := fmt.Sprintf("%s: %v", stage, err)
	logger.Error("[RUNNER] %s %s aborted: %s", sig.Symbol, intentLabel(sig.Intent), reason)
	r.notify(ctx, formatAbort(sig, reason))
	return models.Result{Status: models.StatusError, Reason: reason}
}

// notify и journal не влияют на результат.
func (r *Runner) notify(ctx context.Context, text string) {
	if r.n == nil {
		return
	}
	if err := r.n.Send(ctx, text); err != nil {
		logger.Warn("[RUNNER] notify failed: %v", err)
	}
}

func (r *Runner) record(ctx context.Context, o models.TradeOutcome) {
	if r.j == nil {
		return
	}
	if err := r.j.Record(ctx, o); err != nil {
		logger.Warn("[RUNNER] journal %s %s failed: %v", o.Symbol, o.OrderID, err)
	}
}

// fills: одна попытка без поллинга. Ошибка не откатывает уже исполненный ордер.
func (r *Runner) fills(ctx context.Context, symbol, orderID string) []models.Execution {
	fills, err := r.ex.GetExecutions(ctx, symbol, orderID)
	if err != nil {
		logger.Warn("[RUNNER] %s executions for %s: %v (fallback price)", symbol, orderID, err)
		return nil
	}
	return fills
}

func (r *Runner) placeOrder(ctx context.Context, o models.Order) (string, error) {
	id, err := r.ex.PlaceOrder(ctx, o)
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	metricOrders.WithLabelValues(string(o.Side), result).Inc()
	return id, err
}

func intentLabel(i models.Intent) string {
	if i == models.IntentUnknown {
		return "unknown"
	}
	return string(i)
}
