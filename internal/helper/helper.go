package helper

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundDownToStep: максимальное кратное step, не превышающее v.
func RoundDownToStep(v, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() {
		return v
	}
	return v.Div(step).Floor().Mul(step)
}

// RoundUpToStep: минимальное кратное step, не меньшее v.
func RoundUpToStep(v, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() {
		return v
	}
	return v.Div(step).Ceil().Mul(step)
}

// Percent считает part / whole * 100; whole <= 0 даёт ноль.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// ParseDecimal разбирает число из ответа биржи. Пустая строка считается ошибкой.
func ParseDecimal(name, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%s empty", name)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s parse %q: %w", name, s, err)
	}
	return d, nil
}

// ParseDecimalOrZero: для необязательных полей (execFee и т.п.).
func ParseDecimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SignedPct форматирует процент со знаком: +5.95%.
func SignedPct(p decimal.Decimal) string {
	if p.IsNegative() {
		return p.StringFixed(2) + "%"
	}
	return "+" + p.StringFixed(2) + "%"
}
