package service

import (
	"strings"
	"time"

	"webhook_bot/internal/modules/config"
	"webhook_bot/internal/signer"

	"github.com/go-resty/resty/v2"
)

type Options struct {
	BaseURL     string
	Category    string // linear
	AccountType string // UNIFIED
	SettleCoin  string // USDT
	Timeout     time.Duration
}

// Client: приватный REST Bybit v5, без ретраев.
type Client struct {
	http   *resty.Client
	signer *signer.Signer

	category    string
	accountType string
	coin        string
}

func NewClient(cfg *config.Config) (*Client, error) {
	s, err := signer.New(cfg.Exchange.APIKey, cfg.Exchange.APISecret, cfg.RecvWindow())
	if err != nil {
		return nil, err
	}
	return New(Options{
		BaseURL:     cfg.Exchange.BaseURL,
		Category:    cfg.Exchange.Category,
		AccountType: cfg.Exchange.AccountType,
		SettleCoin:  cfg.Exchange.SettleCoin,
		Timeout:     cfg.Exchange.Timeout,
	}, s), nil
}

func New(opts Options, s *signer.Signer) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Category == "" {
		opts.Category = "linear"
	}
	if opts.AccountType == "" {
		opts.AccountType = "UNIFIED"
	}
	if opts.SettleCoin == "" {
		opts.SettleCoin = "USDT"
	}

	hc := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", "webhook_bot")

	return &Client{
		http:        hc,
		signer:      s,
		category:    opts.Category,
		accountType: opts.AccountType,
		coin:        opts.SettleCoin,
	}
}
