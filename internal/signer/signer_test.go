package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expected(secret, msg string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(msg))
	return hex.EncodeToString(h.Sum(nil))
}

func TestSign(t *testing.T) {
	got, err := Sign("s3cr3t", "key", "5000", 1700000000000, "category=linear&symbol=BTCUSDT")
	require.NoError(t, err)
	assert.Equal(t, expected("s3cr3t", "1700000000000key5000category=linear&symbol=BTCUSDT"), got)
	assert.Len(t, got, 64)

	again, err := Sign("s3cr3t", "key", "5000", 1700000000000, "category=linear&symbol=BTCUSDT")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestSign_MissingCredentials(t *testing.T) {
	_, err := Sign("", "key", "5000", 1, "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, err = Sign("secret", "", "5000", 1, "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = New("", "secret", 5*time.Second)
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestCanonicalQuery_SortedAndEscaped(t *testing.T) {
	q := CanonicalQuery(map[string]string{
		"symbol":   "BTCUSDT",
		"category": "linear",
		"orderId":  "a b",
	})
	assert.Equal(t, "category=linear&orderId=a+b&symbol=BTCUSDT", q)
	assert.Equal(t, "", CanonicalQuery(nil))
}

func TestCanonicalBody_Deterministic(t *testing.T) {
	body := map[string]any{
		"symbol":     "BTCUSDT",
		"category":   "linear",
		"qty":        "0.06",
		"reduceOnly": true,
	}
	first, err := CanonicalBody(body)
	require.NoError(t, err)
	assert.Equal(t, `{"category":"linear","qty":"0.06","reduceOnly":true,"symbol":"BTCUSDT"}`, string(first))

	for i := 0; i < 20; i++ {
		next, err := CanonicalBody(body)
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestSigner_FreshTimestampPerCall(t *testing.T) {
	s, err := New("key", "secret", 5*time.Second)
	require.NoError(t, err)

	ticks := []int64{1000, 2000}
	i := 0
	s = s.WithClock(func() time.Time {
		ts := ticks[i]
		i++
		return time.UnixMilli(ts)
	})

	a, err := s.Sign("x=1")
	require.NoError(t, err)
	b, err := s.Sign("x=1")
	require.NoError(t, err)

	assert.Equal(t, "1000", a.Timestamp)
	assert.Equal(t, "2000", b.Timestamp)
	assert.NotEqual(t, a.Value, b.Value)
	assert.Equal(t, expected("secret", "1000key5000x=1"), a.Value)
	assert.Equal(t, "5000", s.RecvWindow())
}
