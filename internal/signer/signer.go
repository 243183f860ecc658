// Package signer подписывает приватные запросы к Bybit v5:
// hex(HMAC-SHA256(secret, timestamp + apiKey + recvWindow + payload)).
package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

var ErrMissingCredentials = errors.New("signer: api key or secret is empty")

// Sign считает подпись. payload это каноническая query-строка (GET) или тело (POST).
func Sign(secret, apiKey, recvWindow string, timestampMs int64, payload string) (string, error) {
	if secret == "" || apiKey == "" {
		return "", ErrMissingCredentials
	}
	msg := strconv.FormatInt(timestampMs, 10) + apiKey + recvWindow + payload
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(msg))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CanonicalQuery: k=v&... с ключами по алфавиту. Ровно эта строка уходит в URL.
func CanonicalQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	v := make(url.Values, len(params))
	for k, val := range params {
		v.Set(k, val)
	}
	return v.Encode()
}

// CanonicalBody: компактный JSON с отсортированными ключами. Ровно эти байты уходят в теле.
func CanonicalBody(body map[string]any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(body)
}

type Signature struct {
	Timestamp string
	Value     string
}

// Signer привязан к ключам. Timestamp берётся заново на каждый вызов:
// биржа отбивает запросы вне recvWindow.
type Signer struct {
	apiKey     string
	secret     string
	recvWindow string
	now        func() time.Time
}

func New(apiKey, secret string, recvWindow time.Duration) (*Signer, error) {
	if apiKey == "" || secret == "" {
		return nil, ErrMissingCredentials
	}
	return &Signer{
		apiKey:     apiKey,
		secret:     secret,
		recvWindow: strconv.FormatInt(recvWindow.Milliseconds(), 10),
		now:        time.Now,
	}, nil
}

// WithClock подменяет часы (для тестов).
func (s *Signer) WithClock(now func() time.Time) *Signer {
	cp := *s
	cp.now = now
	return &cp
}

func (s *Signer) APIKey() string     { return s.apiKey }
func (s *Signer) RecvWindow() string { return s.recvWindow }

func (s *Signer) Sign(payload string) (Signature, error) {
	ts := s.now().UnixMilli()
	sig, err := Sign(s.secret, s.apiKey, s.recvWindow, ts, payload)
	if err != nil {
		return Signature{}, err
	}
	return Signature{Timestamp: strconv.FormatInt(ts, 10), Value: sig}, nil
}
