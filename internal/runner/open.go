package runner

import (
	"context"

	"webhook_bot/internal/helper"
	"webhook_bot/internal/models"
	"webhook_bot/pkg/logger"
)

func (r *Runner) open(ctx context.Context, sig models.Signal) models.Result {
	lev := r.settings.leverageFor(sig.Side)

	// one-way режим: плечо по символу одно, ставим его под открываемую сторону
	if err := r.ex.SetLeverage(ctx, sig.Symbol, lev, lev); err != nil {
		if isRejection(err) {
			return r.abort(ctx, sig, "set leverage", err)
		}
		// биржа ответа не дала: торгуем с текущим плечом
		logger.Warn("[RUNNER] %s set leverage %s: %v", sig.Symbol, lev, err)
	}

	bal, err := r.ex.GetBalance(ctx)
	if err != nil {
		return r.abort(ctx, sig, "balance", err)
	}
	inst, err := r.ex.GetInstrument(ctx, sig.Symbol)
	if err != nil {
		return r.abort(ctx, sig, "instrument", err)
	}
	price, err := r.ex.GetLastPrice(ctx, sig.Symbol)
	if err != nil {
		return r.abort(ctx, sig, "last price", err)
	}

	qty, err := CalcSize(bal.AvailableUSDT, lev, price, inst)
	if err != nil {
		return r.abort(ctx, sig, "size", err)
	}

	order := models.Order{
		Symbol: sig.Symbol,
		Side:   sig.Side,
		Type:   models.OrderTypeMarket,
		Qty:    qty,
		LinkID: r.newLinkID(),
	}
	orderID, err := r.placeOrder(ctx, order)
	if err != nil {
		return r.abort(ctx, sig, "place order", err)
	}

	rec := Reconcile(r.fills(ctx, sig.Symbol, orderID), price)
	pct := helper.Percent(qty.Mul(rec.AvgPrice).Div(lev), bal.AvailableUSDT)

	out := models.TradeOutcome{
		Symbol:        sig.Symbol,
		Intent:        models.IntentOpen,
		Side:          sig.Side,
		OrderID:       orderID,
		LinkID:        order.LinkID,
		Qty:           qty,
		Leverage:      lev,
		EntryPrice:    rec.AvgPrice,
		AvgPrice:      rec.AvgPrice,
		FeeTotal:      rec.FeeTotal,
		Pct:           pct,
		BalanceBefore: bal.AvailableUSDT,
		FillsReported: rec.FromFills,
		At:            r.now(),
	}
	logger.Info("[RUNNER] %s opened %s qty=%s avg=%s pct=%s%% order=%s",
		sig.Symbol, sig.Side, qty, rec.AvgPrice, pct.StringFixed(2), orderID)

	r.notify(ctx, formatOpen(out))
	r.record(ctx, out)
	return models.Result{Status: models.StatusOK, Outcome: &out}
}
