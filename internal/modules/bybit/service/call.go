package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"webhook_bot/internal/signer"
	"webhook_bot/pkg/logger"
	"webhook_bot/pkg/tracing"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

const (
	retCodeOK                  = 0
	retCodeLeverageNotModified = 110043
)

type envelope struct {
	RetCode int             `json:"retCode"`
	RetMsg  string          `json:"retMsg"`
	Result  json.RawMessage `json:"result"`
	Time    int64           `json:"time"`
}

// APIError: биржа ответила retCode != 0. Raw хранит тело ответа целиком.
type APIError struct {
	Op   string
	Code int
	Msg  string
	Raw  string
}

// Rejected: запрос дошёл до биржи и отклонён ею.
func (e *APIError) Rejected() bool { return true }

func (e *APIError) Error() string {
	return fmt.Sprintf("%s rejected: retCode=%d retMsg=%s RAW=%s", e.Op, e.Code, e.Msg, e.Raw)
}

// call подписывает запрос, ставит заголовки и разбирает конверт.
// GET подписывается канонической query-строкой, POST каноническим телом;
// на провод уходят те же байты, что подписаны.
func (c *Client) call(
	ctx context.Context,
	op string,
	method string,
	path string,
	query map[string]string,
	body map[string]any,
	out any,
) (err error) {
	span, ctx := tracing.StartSpan(ctx, "bybit."+op, map[string]string{
		"http.method": method,
		"http.path":   path,
	})
	started := time.Now()
	defer func() {
		observeRequest(op, started, err)
		tracing.Finish(span, err)
	}()

	req := c.http.R().SetContext(ctx)

	var payload string
	switch method {
	case http.MethodGet:
		payload = signer.CanonicalQuery(query)
		if payload != "" {
			req.SetQueryString(payload)
		}
	case http.MethodPost:
		b, mErr := signer.CanonicalBody(body)
		if mErr != nil {
			return errors.Wrapf(mErr, "%s marshal", op)
		}
		payload = string(b)
		req.SetBody(b)
	default:
		return errors.Errorf("%s: unsupported method %s", op, method)
	}

	sig, err := c.signer.Sign(payload)
	if err != nil {
		return errors.Wrap(err, op)
	}
	req.SetHeaders(map[string]string{
		"Content-Type":       "application/json",
		"X-BAPI-API-KEY":     c.signer.APIKey(),
		"X-BAPI-TIMESTAMP":   sig.Timestamp,
		"X-BAPI-RECV-WINDOW": c.signer.RecvWindow(),
		"X-BAPI-SIGN":        sig.Value,
		"X-BAPI-SIGN-TYPE":   "2",
	})

	resp, err := req.Execute(method, path)
	if err != nil {
		return errors.Wrapf(err, "%s do", op)
	}
	raw := resp.Body()
	logger.Debug("[BYBIT] %s %s %s → %d %s", method, path, payload, resp.StatusCode(), string(raw))

	if !resp.IsSuccess() {
		return errors.Errorf("%s http %d: %s", op, resp.StatusCode(), string(raw))
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return errors.Wrapf(err, "%s decode: body=%s", op, string(raw))
	}
	if env.RetCode != retCodeOK {
		return &APIError{Op: op, Code: env.RetCode, Msg: env.RetMsg, Raw: string(raw)}
	}
	if out != nil && len(env.Result) > 0 {
		if err := sonic.Unmarshal(env.Result, out); err != nil {
			return errors.Wrapf(err, "%s decode result: body=%s", op, string(raw))
		}
	}
	return nil
}
