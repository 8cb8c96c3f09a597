package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the Prometheus metrics recorded around query execution.
type Metrics struct {
	// QueriesTotal counts queries sent, labeled by query kind.
	QueriesTotal *prometheus.CounterVec

	// QueriesFailed counts failed queries, labeled by query kind and
	// failure stage (send, status, decode).
	QueriesFailed *prometheus.CounterVec

	// QueryDuration observes end-to-end query duration in seconds,
	// labeled by query kind.
	QueryDuration *prometheus.HistogramVec

	// DecodeFailures counts response decode failures, labeled by the
	// entity type that failed to decode.
	DecodeFailures *prometheus.CounterVec
}

// NewMetrics creates and registers the query metrics on the given
// registerer. A nil registerer uses the default Prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maka_queries_total",
			Help: "Total number of queries sent to the Academic Knowledge API.",
		}, []string{"kind"}),

		QueriesFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maka_queries_failed_total",
			Help: "Total number of failed queries by kind and failure stage.",
		}, []string{"kind", "stage"}),

		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "maka_query_duration_seconds",
			Help:    "End-to-end query duration in seconds by kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),

		DecodeFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maka_decode_failures_total",
			Help: "Total number of response decode failures by entity type.",
		}, []string{"entity"}),
	}
}
