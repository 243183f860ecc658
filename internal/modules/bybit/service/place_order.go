package service

import (
	"context"
	"net/http"

	"webhook_bot/internal/models"

	"github.com/pkg/errors"
)

// PlaceOrder: рыночный IOC ордер. Возвращает orderId биржи.
func (c *Client) PlaceOrder(ctx context.Context, o models.Order) (string, error) {
	orderType := o.Type
	if orderType == "" {
		orderType = models.OrderTypeMarket
	}

	body := map[string]any{
		"category":    c.category,
		"symbol":      o.Symbol,
		"side":        string(o.Side),
		"orderType":   string(orderType),
		"qty":         o.Qty.String(),
		"timeInForce": "IOC",
		"positionIdx": 0,
	}
	if o.ReduceOnly {
		body["reduceOnly"] = true
	}
	if o.LinkID != "" {
		body["orderLinkId"] = o.LinkID
	}

	var res createOrderResult
	if err := c.call(ctx, "PlaceOrder", http.MethodPost, "/v5/order/create", nil, body, &res); err != nil {
		return "", err
	}
	if res.OrderID == "" {
		return "", errors.Errorf("PlaceOrder %s %s: empty orderId", o.Side, o.Symbol)
	}
	return res.OrderID, nil
}
