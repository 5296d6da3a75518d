package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dropshop"

// Prometheus records order workflow outcomes.
type Prometheus struct {
	outcomes      *prometheus.CounterVec
	releases      *prometheus.CounterVec
	sweeps        prometheus.Counter
	sweepExpired  prometheus.Counter
	sweepDuration prometheus.Histogram
}

func New(reg prometheus.Registerer) (*Prometheus, error) {
	m := &Prometheus{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "orders", Name: "outcomes_total",
			Help: "Order operations by outcome.",
		}, []string{"op", "outcome"}),
		releases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "stock", Name: "releases_total",
			Help: "Units returned to stock by reason.",
		}, []string{"reason"}),
		sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "sweeper", Name: "runs_total",
			Help: "Expiration sweeps run.",
		}),
		sweepExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "sweeper", Name: "expired_total",
			Help: "Orders expired by the sweeper.",
		}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "sweeper", Name: "duration_seconds",
			Help:    "Expiration sweep duration.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{m.outcomes, m.releases, m.sweeps, m.sweepExpired, m.sweepDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Prometheus) OrderOutcome(op string, outcome string) {
	m.outcomes.WithLabelValues(op, outcome).Inc()
}

func (m *Prometheus) StockReleased(reason string) {
	m.releases.WithLabelValues(reason).Inc()
}

func (m *Prometheus) SweepFinished(expired int, took time.Duration) {
	m.sweeps.Inc()
	m.sweepExpired.Add(float64(expired))
	m.sweepDuration.Observe(took.Seconds())
}
