package service

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var metricRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bybit_request_duration_seconds",
		Help:    "Latency of private Bybit REST calls by operation and result (ok|rejected|error)",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"op", "result"},
)

func init() {
	prometheus.MustRegister(metricRequestDuration)
}

func observeRequest(op string, started time.Time, err error) {
	result := "ok"
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		result = "rejected"
	case err != nil:
		result = "error"
	}
	metricRequestDuration.WithLabelValues(op, result).Observe(time.Since(started).Seconds())
}
