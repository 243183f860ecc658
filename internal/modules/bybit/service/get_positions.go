package service

import (
	"context"
	"net/http"

	"webhook_bot/internal/helper"
	"webhook_bot/internal/models"
)

// GetPositions: открытые позиции по символу. Нулевые и без стороны отбрасываются.
func (c *Client) GetPositions(ctx context.Context, symbol string) ([]models.Position, error) {
	var res positionsResult
	err := c.call(ctx, "GetPositions", http.MethodGet, "/v5/position/list", map[string]string{
		"category": c.category,
		"symbol":   symbol,
	}, nil, &res)
	if err != nil {
		return nil, err
	}

	out := make([]models.Position, 0, len(res.List))
	for _, p := range res.List {
		size := helper.ParseDecimalOrZero(p.Size)
		if !size.IsPositive() {
			continue
		}
		var side models.PositionSide
		switch p.Side {
		case "Buy":
			side = models.PositionLong
		case "Sell":
			side = models.PositionShort
		default:
			continue
		}
		out = append(out, models.Position{
			Symbol:        p.Symbol,
			Side:          side,
			Size:          size,
			AvgEntryPrice: helper.ParseDecimalOrZero(p.AvgPrice),
		})
	}
	return out, nil
}
