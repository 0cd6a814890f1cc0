package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Label names
	LabelEndpoint = "endpoint"
	LabelOutcome  = "outcome"

	// Outcome values
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid"
	OutcomeBadRequest = "bad_request"
	OutcomeInternal   = "internal"
)

// Metrics holds the server's Prometheus metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	CacheHitsTotal  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the server's metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spoken_requests_total",
				Help: "Total number of queries answered, by endpoint and outcome",
			},
			[]string{LabelEndpoint, LabelOutcome},
		),
		CacheHitsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spoken_cache_hits_total",
				Help: "Total number of queries answered from the result cache",
			},
			[]string{LabelEndpoint},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spoken_request_duration_seconds",
				Help:    "Query latency distribution",
				Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1},
			},
			[]string{LabelEndpoint},
		),
	}
}
