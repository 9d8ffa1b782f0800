package fetch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments source fetches. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

// NewMetrics registers the fetch collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portal",
			Subsystem: "source",
			Name:      "fetch_duration_seconds",
			Help:      "Time to receive response headers from a published sheet.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "source",
			Name:      "fetches_total",
			Help:      "Sheet fetches by source and status code (\"error\" for transport failures).",
		}, []string{"source", "status"}),
	}
}

func (m *Metrics) observe(source, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(source).Observe(elapsed.Seconds())
	m.requests.WithLabelValues(source, status).Inc()
}
