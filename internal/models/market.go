package models

import "github.com/shopspring/decimal"

type AccountBalance struct {
	AvailableUSDT decimal.Decimal
}

// InstrumentConstraints: lotSizeFilter инструмента.
type InstrumentConstraints struct {
	Symbol      string
	MinOrderQty decimal.Decimal
	QtyStep     decimal.Decimal
}

type PositionSide string

const (
	PositionLong  PositionSide = "long"
	PositionShort PositionSide = "short"
)

// EntrySide: сторона ордера, которым позиция была открыта.
func (p PositionSide) EntrySide() Side {
	if p == PositionShort {
		return SideSell
	}
	return SideBuy
}

type Position struct {
	Symbol        string
	Side          PositionSide
	Size          decimal.Decimal
	AvgEntryPrice decimal.Decimal
}

type OrderType string

const OrderTypeMarket OrderType = "Market"

type Order struct {
	Symbol     string
	Side       Side
	Type       OrderType
	Qty        decimal.Decimal
	ReduceOnly bool
	LinkID     string // orderLinkId, клиентский id
}

type Execution struct {
	ExecPrice decimal.Decimal
	ExecQty   decimal.Decimal
	ExecFee   decimal.Decimal
}
