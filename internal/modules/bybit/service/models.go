package service

// Структуры поля result в ответах v5. Числа Bybit отдаёт строками.

type walletBalanceResult struct {
	List []struct {
		AccountType           string `json:"accountType"`
		TotalEquity           string `json:"totalEquity"`
		TotalAvailableBalance string `json:"totalAvailableBalance"`
		Coin                  []struct {
			Coin                string `json:"coin"`
			WalletBalance       string `json:"walletBalance"`
			AvailableToWithdraw string `json:"availableToWithdraw"`
		} `json:"coin"`
	} `json:"list"`
}

type instrumentsResult struct {
	Category string `json:"category"`
	List     []struct {
		Symbol        string `json:"symbol"`
		Status        string `json:"status"`
		LotSizeFilter struct {
			MinOrderQty string `json:"minOrderQty"`
			MaxOrderQty string `json:"maxOrderQty"`
			QtyStep     string `json:"qtyStep"`
		} `json:"lotSizeFilter"`
	} `json:"list"`
}

type tickersResult struct {
	Category string `json:"category"`
	List     []struct {
		Symbol    string `json:"symbol"`
		LastPrice string `json:"lastPrice"`
		MarkPrice string `json:"markPrice"`
	} `json:"list"`
}

type positionsResult struct {
	List []struct {
		Symbol      string `json:"symbol"`
		Side        string `json:"side"`
		Size        string `json:"size"`
		AvgPrice    string `json:"avgPrice"`
		PositionIdx int    `json:"positionIdx"`
		Leverage    string `json:"leverage"`
	} `json:"list"`
}

type createOrderResult struct {
	OrderID     string `json:"orderId"`
	OrderLinkID string `json:"orderLinkId"`
}

type executionsResult struct {
	List []struct {
		Symbol    string `json:"symbol"`
		OrderID   string `json:"orderId"`
		ExecID    string `json:"execId"`
		ExecType  string `json:"execType"`
		ExecPrice string `json:"execPrice"`
		ExecQty   string `json:"execQty"`
		ExecFee   string `json:"execFee"`
	} `json:"list"`
}
