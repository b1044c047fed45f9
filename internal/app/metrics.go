package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/daily-quote/internal/domain"
)

const metricsNamespace = "dailyquote"

// Metrics records quote resolution outcomes in Prometheus.
// A nil *Metrics records nothing.
type Metrics struct {
	loads         *prometheus.CounterVec
	fetchDuration prometheus.Histogram
}

// NewMetrics registers the provider metrics with reg.
// Pass prometheus.DefaultRegisterer to expose them on /-/metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		loads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "loads_total",
			Help:      "Resolved quote loads by source (cache, network, fallback).",
		}, []string{"source"}),
		fetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of quote API fetches, including failed ones.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 6, 10},
		}),
	}
}

func (m *Metrics) observeLoad(source domain.Source) {
	if m == nil {
		return
	}

	m.loads.WithLabelValues(string(source)).Inc()
}

func (m *Metrics) observeFetch(d time.Duration) {
	if m == nil {
		return
	}

	m.fetchDuration.Observe(d.Seconds())
}
