// Package metrics exposes Prometheus instrumentation for the HTTP API and
// the order lifecycle.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics collects HTTP and order lifecycle counters.
type ServerMetrics struct {
	Requests        *prometheus.CounterVec
	LatencyMS       *prometheus.HistogramVec
	OrdersPlaced    prometheus.Counter
	OrdersCancelled prometheus.Counter
	OrdersRejected  prometheus.Counter
}

// NewServerMetrics registers and returns the bookshop metric set.
func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookshop",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bookshop",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bookshop",
		Name:      "orders_placed_total",
		Help:      "Total number of successfully placed orders.",
	})
	cancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bookshop",
		Name:      "orders_cancelled_total",
		Help:      "Total number of cancelled orders.",
	})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bookshop",
		Name:      "orders_rejected_total",
		Help:      "Total number of order placements rejected by a business rule.",
	})

	reg.MustRegister(requests, latency, placed, cancelled, rejected)
	return &ServerMetrics{
		Requests:        requests,
		LatencyMS:       latency,
		OrdersPlaced:    placed,
		OrdersCancelled: cancelled,
		OrdersRejected:  rejected,
	}
}

// Handler returns the scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
