package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOK         Status = "ok"
	StatusNoPosition Status = "no_position"
	StatusIgnored    Status = "ignored"
	StatusError      Status = "error"
)

// TradeOutcome: итог одного открытия/закрытия. Ничего из этого не читается обратно.
type TradeOutcome struct {
	Symbol        string          `json:"symbol"`
	Intent        Intent          `json:"intent"`
	Side          Side            `json:"side"`
	OrderID       string          `json:"order_id"`
	LinkID        string          `json:"order_link_id"`
	Qty           decimal.Decimal `json:"qty"`
	Leverage      decimal.Decimal `json:"leverage"`
	EntryPrice    decimal.Decimal `json:"entry_price"`
	AvgPrice      decimal.Decimal `json:"avg_price"`
	PnL           decimal.Decimal `json:"pnl"`
	FeeTotal      decimal.Decimal `json:"fee_total"`
	NetPnL        decimal.Decimal `json:"net_pnl"`
	Pct           decimal.Decimal `json:"pct"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	FillsReported bool            `json:"fills_reported"`
	At            time.Time       `json:"at"`
}

// Result: то, что получает вызывающий вебхук.
type Result struct {
	Status  Status        `json:"status"`
	Reason  string        `json:"reason,omitempty"`
	Outcome *TradeOutcome `json:"outcome,omitempty"`
}
