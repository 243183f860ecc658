package runner

import (
	"fmt"
	"strings"

	"webhook_bot/internal/helper"
	"webhook_bot/internal/models"

	"github.com/shopspring/decimal"
)

func formatOpen(o models.TradeOutcome) string {
	title := "Лонг"
	if o.Side == models.SideSell {
		title = "Шорт"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", title, o.Symbol)
	fmt.Fprintf(&b, "Цена входа: %s\n", o.AvgPrice.StringFixed(4))
	fmt.Fprintf(&b, "Процент от депозита: %s%%\n", o.Pct.StringFixed(2))
	fmt.Fprintf(&b, "Плечо: %sx", o.Leverage.String())
	if !o.FillsReported {
		b.WriteString("\n(fills ещё не пришли, цена по тикеру)")
	}
	return b.String()
}

func formatClose(side models.PositionSide, o models.TradeOutcome) string {
	title := "Лонг закрыт"
	if side == models.PositionShort {
		title = "Шорт закрыт"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", title, o.Symbol)
	fmt.Fprintf(&b, "Цена выхода: %s\n", o.AvgPrice.StringFixed(4))
	fmt.Fprintf(&b, "PnL: %s USDT (комиссия %s)\n", signed(o.NetPnL), o.FeeTotal.StringFixed(4))
	fmt.Fprintf(&b, "Изменение баланса: %s", helper.SignedPct(o.Pct))
	if !o.FillsReported {
		b.WriteString("\n(fills ещё не пришли, цена по входу)")
	}
	return b.String()
}

func formatAbort(sig models.Signal, reason string) string {
	return fmt.Sprintf("⚠️ %s %s: %s", sig.Symbol, intentLabel(sig.Intent), reason)
}

func signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}
