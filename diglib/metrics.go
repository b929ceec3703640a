package diglib

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "diggeo"

// Metrics is a set of prometheus collectors on a private registry. diggeo
// is a short living process so there is no endpoint to scrape: the
// registry is dumped into a file for node_exporter textfile collector.
type Metrics struct {
	registry       *prometheus.Registry
	lookups        *prometheus.CounterVec
	resolutions    *prometheus.CounterVec
	lookupDuration prometheus.Histogram
}

func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile dumps metrics in text exposition format. The file is
// written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observeLookup(elapsed time.Duration, err error) {
	m.lookups.WithLabelValues(outcomeLabel(err)).Inc()
	m.lookupDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) observeResolution(err error) {
	m.resolutions.WithLabelValues(outcomeLabel(err)).Inc()
}

func outcomeLabel(err error) string {
	if err == nil {
		return "success"
	}

	switch ErrorKind(err) {
	case KindResolution:
		return "resolution_error"
	case KindNetwork:
		return "network_error"
	case KindAPI:
		return "api_error"
	}

	return "error"
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookups_total",
			Help:      "Total number of geolocation lookups by outcome",
		}, []string{"outcome"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "resolutions_total",
			Help:      "Total number of domain resolutions by outcome",
		}, []string{"outcome"}),
		lookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "lookup_duration_seconds",
			Help:      "Duration of geolocation lookups",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}

	m.registry.MustRegister(m.lookups, m.resolutions, m.lookupDuration)

	return m
}
