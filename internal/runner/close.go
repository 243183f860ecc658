package runner

import (
	"context"
	"fmt"
	"strings"

	"webhook_bot/internal/helper"
	"webhook_bot/internal/models"
	"webhook_bot/pkg/logger"
)

func (r *Runner) close(ctx context.Context, sig models.Signal) models.Result {
	positions, err := r.ex.GetPositions(ctx, sig.Symbol)
	if err != nil {
		return r.abort(ctx, sig, "positions", err)
	}

	pos, ok := r.pickPosition(sig.Symbol, positions)
	if !ok {
		logger.Info("[RUNNER] %s close: no open position", sig.Symbol)
		return models.Result{
			Status: models.StatusNoPosition,
			Reason: fmt.Sprintf("no open position for %s", sig.Symbol),
		}
	}

	// баланс до сделки: процент считается от капитала под риском
	before, err := r.ex.GetBalance(ctx)
	if err != nil {
		return r.abort(ctx, sig, "balance", err)
	}

	order := models.Order{
		Symbol:     sig.Symbol,
		Side:       pos.Side.EntrySide().Opposite(),
		Type:       models.OrderTypeMarket,
		Qty:        pos.Size,
		ReduceOnly: true,
		LinkID:     r.newLinkID(),
	}
	orderID, err := r.placeOrder(ctx, order)
	if err != nil {
		return r.abort(ctx, sig, "place order", err)
	}

	rec := Reconcile(r.fills(ctx, sig.Symbol, orderID), pos.AvgEntryPrice)
	pnl := ClosePnL(pos.Side, pos.AvgEntryPrice, rec.AvgPrice, pos.Size)
	net := pnl.Sub(rec.FeeTotal)
	pct := helper.Percent(net, before.AvailableUSDT)

	out := models.TradeOutcome{
		Symbol:        sig.Symbol,
		Intent:        models.IntentClose,
		Side:          order.Side,
		OrderID:       orderID,
		LinkID:        order.LinkID,
		Qty:           pos.Size,
		Leverage:      r.settings.leverageFor(pos.Side.EntrySide()),
		EntryPrice:    pos.AvgEntryPrice,
		AvgPrice:      rec.AvgPrice,
		PnL:           pnl,
		FeeTotal:      rec.FeeTotal,
		NetPnL:        net,
		Pct:           pct,
		BalanceBefore: before.AvailableUSDT,
		FillsReported: rec.FromFills,
		At:            r.now(),
	}
	logger.Info("[RUNNER] %s closed %s qty=%s entry=%s exit=%s net=%s pct=%s",
		sig.Symbol, pos.Side, pos.Size, pos.AvgEntryPrice, rec.AvgPrice, net, helper.SignedPct(pct))

	r.notify(ctx, formatClose(pos.Side, out))
	r.record(ctx, out)
	return models.Result{Status: models.StatusOK, Outcome: &out}
}

// pickPosition: первая позиция с size > 0 на разрешённой стороне.
func (r *Runner) pickPosition(symbol string, positions []models.Position) (models.Position, bool) {
	for _, p := range positions {
		if !p.Size.IsPositive() {
			continue
		}
		if p.Symbol != "" && !strings.EqualFold(p.Symbol, symbol) {
			continue
		}
		switch p.Side {
		case models.PositionLong:
			return p, true
		case models.PositionShort:
			if r.settings.shortsEnabled() {
				return p, true
			}
		}
	}
	return models.Position{}, false
}
