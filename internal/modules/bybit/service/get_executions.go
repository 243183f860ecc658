package service

import (
	"context"
	"net/http"

	"webhook_bot/internal/helper"
	"webhook_bot/internal/models"
)

// GetExecutions: fills по orderId. Пустой список нормален, если биржа ещё не успела.
func (c *Client) GetExecutions(ctx context.Context, symbol, orderID string) ([]models.Execution, error) {
	var res executionsResult
	err := c.call(ctx, "GetExecutions", http.MethodGet, "/v5/execution/list", map[string]string{
		"category": c.category,
		"symbol":   symbol,
		"orderId":  orderID,
	}, nil, &res)
	if err != nil {
		return nil, err
	}

	out := make([]models.Execution, 0, len(res.List))
	for _, e := range res.List {
		if e.ExecType != "" && e.ExecType != "Trade" {
			continue
		}
		out = append(out, models.Execution{
			ExecPrice: helper.ParseDecimalOrZero(e.ExecPrice),
			ExecQty:   helper.ParseDecimalOrZero(e.ExecQty),
			ExecFee:   helper.ParseDecimalOrZero(e.ExecFee),
		})
	}
	return out, nil
}
