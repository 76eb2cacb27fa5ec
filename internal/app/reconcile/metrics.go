package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

// Metrics are the prometheus collectors updated by each run.
type Metrics struct {
	runs     *prometheus.CounterVec
	pushes   *prometheus.CounterVec
	quotes   prometheus.Gauge
	duration prometheus.Histogram
}

// NewMetrics creates and registers the sync collectors. A nil registerer
// leaves them unregistered, which keeps tests independent.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotesync",
			Name:      "sync_runs_total",
			Help:      "Reconciliation runs by final status.",
		}, []string{"status"}),
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotesync",
			Name:      "sync_pushed_total",
			Help:      "Quotes pushed to the remote by outcome.",
		}, []string{"outcome"}),
		quotes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quotesync",
			Name:      "quotes",
			Help:      "Quotes held locally after the last run.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quotesync",
			Name:      "sync_duration_seconds",
			Help:      "Wall time of reconciliation runs.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(m.runs, m.pushes, m.quotes, m.duration)
	}

	return m
}

func (m *Metrics) observe(result domain.SyncResult, localCount int) {
	if m == nil {
		return
	}

	m.runs.WithLabelValues(string(result.Status)).Inc()
	m.duration.Observe(result.Duration.Seconds())
	m.quotes.Set(float64(localCount))

	if n := result.Pushed.Succeeded(); n > 0 {
		m.pushes.WithLabelValues("ok").Add(float64(n))
	}

	if n := result.Pushed.Failed(); n > 0 {
		m.pushes.WithLabelValues("failed").Add(float64(n))
	}
}
