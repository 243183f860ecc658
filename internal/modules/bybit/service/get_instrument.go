package service

import (
	"context"
	"net/http"

	"webhook_bot/internal/helper"
	"webhook_bot/internal/models"

	"github.com/pkg/errors"
)

func (c *Client) GetInstrument(ctx context.Context, symbol string) (models.InstrumentConstraints, error) {
	var res instrumentsResult
	err := c.call(ctx, "GetInstrument", http.MethodGet, "/v5/market/instruments-info", map[string]string{
		"category": c.category,
		"symbol":   symbol,
	}, nil, &res)
	if err != nil {
		return models.InstrumentConstraints{}, err
	}
	if len(res.List) == 0 {
		return models.InstrumentConstraints{}, errors.Errorf("instrument %s not found", symbol)
	}

	inst := res.List[0]
	if inst.Status != "" && inst.Status != "Trading" {
		return models.InstrumentConstraints{}, errors.Errorf("instrument %s not trading: status=%s", symbol, inst.Status)
	}

	minQty, err := helper.ParseDecimal("minOrderQty", inst.LotSizeFilter.MinOrderQty)
	if err != nil {
		return models.InstrumentConstraints{}, errors.Wrap(err, "GetInstrument")
	}
	step, err := helper.ParseDecimal("qtyStep", inst.LotSizeFilter.QtyStep)
	if err != nil {
		return models.InstrumentConstraints{}, errors.Wrap(err, "GetInstrument")
	}

	return models.InstrumentConstraints{
		Symbol:      inst.Symbol,
		MinOrderQty: minQty,
		QtyStep:     step,
	}, nil
}
