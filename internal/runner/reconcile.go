package runner

import (
	"webhook_bot/internal/models"

	"github.com/shopspring/decimal"
)

type Reconciliation struct {
	AvgPrice  decimal.Decimal
	FeeTotal  decimal.Decimal
	FilledQty decimal.Decimal
	// FromFills=false: fills ещё не пришли, AvgPrice взята из fallback.
	FromFills bool
}

// Reconcile: средневзвешенная цена исполнения и сумма комиссий.
// Пустой список (или нулевой объём) возвращает fallback без изменений.
func Reconcile(fills []models.Execution, fallback decimal.Decimal) Reconciliation {
	notional, qty, fee := decimal.Zero, decimal.Zero, decimal.Zero
	for _, f := range fills {
		notional = notional.Add(f.ExecPrice.Mul(f.ExecQty))
		qty = qty.Add(f.ExecQty)
		fee = fee.Add(f.ExecFee)
	}

	if !qty.IsPositive() {
		return Reconciliation{AvgPrice: fallback, FeeTotal: fee}
	}
	return Reconciliation{
		AvgPrice:  notional.Div(qty),
		FeeTotal:  fee,
		FilledQty: qty,
		FromFills: true,
	}
}

// ClosePnL: лонг (exit - entry) * qty, шорт (entry - exit) * qty.
func ClosePnL(side models.PositionSide, entry, exit, qty decimal.Decimal) decimal.Decimal {
	if side == models.PositionShort {
		return entry.Sub(exit).Mul(qty)
	}
	return exit.Sub(entry).Mul(qty)
}
