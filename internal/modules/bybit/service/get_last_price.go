package service

import (
	"context"
	"net/http"

	"webhook_bot/internal/helper"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func (c *Client) GetLastPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	var res tickersResult
	err := c.call(ctx, "GetLastPrice", http.MethodGet, "/v5/market/tickers", map[string]string{
		"category": c.category,
		"symbol":   symbol,
	}, nil, &res)
	if err != nil {
		return decimal.Zero, err
	}
	if len(res.List) == 0 {
		return decimal.Zero, errors.Errorf("ticker %s not found", symbol)
	}

	px, err := helper.ParseDecimal("lastPrice", res.List[0].LastPrice)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "GetLastPrice")
	}
	return px, nil
}
