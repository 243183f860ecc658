package service

import (
	"context"
	"net/http"
	"strings"

	"webhook_bot/internal/helper"
	"webhook_bot/internal/models"

	"github.com/pkg/errors"
)

func (c *Client) GetBalance(ctx context.Context) (models.AccountBalance, error) {
	var res walletBalanceResult
	err := c.call(ctx, "GetBalance", http.MethodGet, "/v5/account/wallet-balance", map[string]string{
		"accountType": c.accountType,
		"coin":        c.coin,
	}, nil, &res)
	if err != nil {
		return models.AccountBalance{}, err
	}
	if len(res.List) == 0 {
		return models.AccountBalance{}, errors.Errorf("GetBalance: empty account list for %s", c.accountType)
	}

	acc := res.List[0]
	raw := acc.TotalAvailableBalance
	if strings.TrimSpace(raw) == "" {
		// классический аккаунт не отдаёт totalAvailableBalance
		for _, coin := range acc.Coin {
			if strings.EqualFold(coin.Coin, c.coin) {
				raw = coin.AvailableToWithdraw
				break
			}
		}
	}

	avail, err := helper.ParseDecimal("totalAvailableBalance", raw)
	if err != nil {
		return models.AccountBalance{}, errors.Wrap(err, "GetBalance")
	}
	return models.AccountBalance{AvailableUSDT: avail}, nil
}
