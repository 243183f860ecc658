package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
)

// SetLeverage выставляет плечо по символу. retCode 110043 (плечо не изменилось): успех.
func (c *Client) SetLeverage(ctx context.Context, symbol string, buy, sell decimal.Decimal) error {
	err := c.call(ctx, "SetLeverage", http.MethodPost, "/v5/position/set-leverage", nil, map[string]any{
		"category":     c.category,
		"symbol":       symbol,
		"buyLeverage":  buy.String(),
		"sellLeverage": sell.String(),
	}, nil)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Code == retCodeLeverageNotModified {
		return nil
	}
	return err
}
