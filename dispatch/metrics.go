package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/heros/triage"
)

const metricsNamespace = "heros"

// metrics holds the collectors a System updates.
type metrics struct {
	registered prometheus.Counter
	processed  prometheus.Counter
	discharged prometheus.Counter
	queued     *prometheus.GaugeVec   // tier
	undone     *prometheus.CounterVec // operation
	routes     *prometheus.CounterVec // result: found, unreachable
	networks   *prometheus.CounterVec // method
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		registered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "patients_registered_total",
			Help:      "Number of patients registered.",
		}),
		processed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "patients_processed_total",
			Help:      "Number of patients taken from the triage queue.",
		}),
		discharged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "patients_discharged_total",
			Help:      "Number of patients discharged.",
		}),
		queued: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "queue_patients",
			Help:      "Patients waiting in the triage queue by tier.",
		}, []string{"tier"}),
		undone: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "undo_total",
			Help:      "Number of undone operations by kind.",
		}, []string{"operation"}),
		routes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "routes_total",
			Help:      "Number of shortest-path queries by outcome.",
		}, []string{"result"}),
		networks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "network_optimizations_total",
			Help:      "Number of spanning-tree computations by method.",
		}, []string{"method"}),
	}
	for _, c := range []prometheus.Collector{
		m.registered, m.processed, m.discharged, m.queued, m.undone, m.routes, m.networks,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observeQueue copies the tier counters into the queue gauge.
func (m *metrics) observeQueue(c triage.TierCounts) {
	m.queued.WithLabelValues(triage.TierRed.String()).Set(float64(c.Red))
	m.queued.WithLabelValues(triage.TierYellow.String()).Set(float64(c.Yellow))
	m.queued.WithLabelValues(triage.TierGreen.String()).Set(float64(c.Green))
}

func (m *metrics) observeRoute(found bool) {
	result := "unreachable"
	if found {
		result = "found"
	}
	m.routes.WithLabelValues(result).Inc()
}
