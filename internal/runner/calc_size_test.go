package runner

import (
	"testing"

	"webhook_bot/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func inst(minQty, step string) models.InstrumentConstraints {
	return models.InstrumentConstraints{Symbol: "BTCUSDT", MinOrderQty: d(minQty), QtyStep: d(step)}
}

func TestCalcSize_Scenario(t *testing.T) {
	qty, err := CalcSize(d("1000"), d("3"), d("50000"), inst("0.001", "0.001"))
	require.NoError(t, err)
	assert.True(t, qty.Equal(d("0.06")), qty.String())
}

func TestCalcSize_FloorsToStep(t *testing.T) {
	// 1000 * 3 / 43210.5 = 0.069427...
	qty, err := CalcSize(d("1000"), d("3"), d("43210.5"), inst("0.001", "0.001"))
	require.NoError(t, err)
	assert.True(t, qty.Equal(d("0.069")), qty.String())

	qty, err = CalcSize(d("250"), d("2"), d("0.37"), inst("10", "10"))
	require.NoError(t, err)
	assert.True(t, qty.Equal(d("1350")), qty.String())
}

func TestCalcSize_ClampsToMinQty(t *testing.T) {
	qty, err := CalcSize(d("1"), d("1"), d("50000"), inst("0.001", "0.001"))
	require.NoError(t, err)
	assert.True(t, qty.Equal(d("0.001")), qty.String())

	// minQty не кратен шагу
	qty, err = CalcSize(d("1"), d("1"), d("50000"), inst("0.0015", "0.001"))
	require.NoError(t, err)
	assert.True(t, qty.Equal(d("0.002")), qty.String())
}

func TestCalcSize_Properties(t *testing.T) {
	balances := []string{"0.5", "13.37", "1000", "98765.4321"}
	levs := []string{"1", "2.5", "3", "20"}
	prices := []string{"0.0001234", "1.5", "2500.25", "65000"}
	constraints := []models.InstrumentConstraints{
		inst("0.001", "0.001"),
		inst("1", "1"),
		inst("0.1", "0.01"),
		inst("100", "10"),
	}

	for _, b := range balances {
		for _, l := range levs {
			for _, p := range prices {
				for _, c := range constraints {
					qty, err := CalcSize(d(b), d(l), d(p), c)
					require.NoError(t, err)
					assert.True(t, qty.GreaterThanOrEqual(c.MinOrderQty), "qty %s < min %s", qty, c.MinOrderQty)
					assert.True(t, qty.Mod(c.QtyStep).IsZero(), "qty %s not multiple of %s", qty, c.QtyStep)

					// выше минимума объём не превышает расчётного
					raw := d(b).Mul(d(l)).Div(d(p))
					if qty.GreaterThan(c.MinOrderQty) {
						assert.True(t, qty.LessThanOrEqual(raw), "qty %s > raw %s", qty, raw)
					}
				}
			}
		}
	}
}

func TestCalcSize_Errors(t *testing.T) {
	_, err := CalcSize(d("1000"), d("3"), d("0"), inst("0.001", "0.001"))
	assert.ErrorIs(t, err, ErrInvalidMarketData)

	_, err = CalcSize(d("1000"), d("3"), d("-1"), inst("0.001", "0.001"))
	assert.ErrorIs(t, err, ErrInvalidMarketData)

	_, err = CalcSize(d("1000"), d("3"), d("50000"), inst("0.001", "0"))
	assert.ErrorIs(t, err, ErrInvalidMarketData)

	_, err = CalcSize(d("1000"), d("0"), d("50000"), inst("0.001", "0.001"))
	assert.ErrorIs(t, err, ErrInvalidLeverage)

	_, err = CalcSize(d("0"), d("3"), d("50000"), inst("0.001", "0.001"))
	assert.ErrorIs(t, err, ErrNoBalance)
}
