package runner

import (
	"errors"
	"fmt"

	"webhook_bot/internal/helper"
	"webhook_bot/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMarketData = errors.New("invalid market data")
	ErrNoBalance         = errors.New("no available balance")
	ErrInvalidLeverage   = errors.New("invalid leverage")
)

// CalcSize: объём в базовой монете на весь доступный баланс с плечом.
//
//	raw = balance * leverage / price
//	qty = floor(raw / qtyStep) * qtyStep, но не меньше minOrderQty
//
// Если minOrderQty сам не кратен шагу, он поднимается до ближайшего кратного.
// Все проверки делаются до деления.
func CalcSize(balance, leverage, price decimal.Decimal, inst models.InstrumentConstraints) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: price=%s", ErrInvalidMarketData, price)
	}
	if !inst.QtyStep.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: qtyStep=%s", ErrInvalidMarketData, inst.QtyStep)
	}
	if inst.MinOrderQty.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: minOrderQty=%s", ErrInvalidMarketData, inst.MinOrderQty)
	}
	if !leverage.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidLeverage, leverage)
	}
	if !balance.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: balance=%s", ErrNoBalance, balance)
	}

	raw := balance.Mul(leverage).Div(price)
	qty := helper.RoundDownToStep(raw, inst.QtyStep)

	minQty := helper.RoundUpToStep(inst.MinOrderQty, inst.QtyStep)
	if qty.LessThan(minQty) {
		qty = minQty
	}
	if !qty.IsPositive() {
		// при minOrderQty = 0 минимальный объём равен шагу
		qty = inst.QtyStep
	}
	return qty, nil
}
