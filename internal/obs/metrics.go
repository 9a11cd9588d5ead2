// Package obs registers the client's Prometheus metrics: API call outcomes
// and realtime channel lifecycle. Metrics are only exported when the
// process is started with a metrics listen address.
package obs

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundscope_api_requests_total",
			Help: "Total number of backend API calls.",
		},
		[]string{"operation", "outcome"},
	)

	realtimeReconnectsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fundscope_realtime_reconnects_total",
		Help: "Realtime channel (re)connection attempts.",
	})

	realtimeConnected = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fundscope_realtime_connected",
		Help: "1 when the realtime channel is connected, 0 otherwise.",
	})
)

var initOnce sync.Once

// Init registers the metrics with the default registry. Safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(apiRequestsTotal, realtimeReconnectsTotal, realtimeConnected)
	})
}

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveAPIRequest records one backend call and its outcome.
func ObserveAPIRequest(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	apiRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// RealtimeConnectAttempt counts one dial of the realtime channel.
func RealtimeConnectAttempt() {
	realtimeReconnectsTotal.Inc()
}

// SetRealtimeConnected flips the connectivity gauge.
func SetRealtimeConnected(connected bool) {
	if connected {
		realtimeConnected.Set(1)
		return
	}
	realtimeConnected.Set(0)
}
