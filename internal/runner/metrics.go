package runner

import "github.com/prometheus/client_golang/prometheus"

var (
	metricSignals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_signals_total",
			Help: "Signals handled by intent and final status",
		},
		[]string{"intent", "status"},
	)
	metricOrders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_orders_total",
			Help: "Orders submitted by side and result (ok|rejected)",
		},
		[]string{"side", "result"},
	)
)

func init() {
	prometheus.MustRegister(metricSignals, metricOrders)
}
