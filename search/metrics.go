package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics bundles the per-run Prometheus instruments, registered lazily
// against hp.Registerer (or a private registry if nil) so a caller that
// never asked for metrics never touches the global default registerer.
type metrics struct {
	pairsProcessed *prometheus.CounterVec
	pairDuration   prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &metrics{
		pairsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "projectionbox_pairs_processed_total",
			Help: "Total number of ordered feature pairs processed by the search engine.",
		}, []string{"outcome"}),
		pairDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "projectionbox_pair_duration_seconds",
			Help:    "Wall-clock time to sweep one ordered feature pair.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if err := reg.Register(m.pairsProcessed); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(err)
		}
		m.pairsProcessed = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(m.pairDuration); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(err)
		}
		m.pairDuration = are.ExistingCollector.(prometheus.Histogram)
	}
	return m
}

func (m *metrics) observePair(outcome string, elapsed time.Duration) {
	m.pairsProcessed.WithLabelValues(outcome).Inc()
	m.pairDuration.Observe(elapsed.Seconds())
}
