package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for activity recording.
type Metrics struct {
	Recorded   prometheus.Counter
	Failed     prometheus.Counter
	Dropped    prometheus.Counter
	QueueDepth prometheus.Gauge
	WriteTime  prometheus.Histogram
}

// NewMetrics registers the audit metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Recorded: f.NewCounter(prometheus.CounterOpts{
			Name: "pgbo_activity_recorded_total",
			Help: "Total number of activity events persisted",
		}),
		Failed: f.NewCounter(prometheus.CounterOpts{
			Name: "pgbo_activity_record_failures_total",
			Help: "Total number of activity events that could not be persisted",
		}),
		Dropped: f.NewCounter(prometheus.CounterOpts{
			Name: "pgbo_activity_dropped_total",
			Help: "Total number of activity events dropped because the queue was full or closed",
		}),
		QueueDepth: f.NewGauge(prometheus.GaugeOpts{
			Name: "pgbo_activity_queue_depth",
			Help: "Activity events waiting to be written",
		}),
		WriteTime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pgbo_activity_write_seconds",
			Help:    "Time spent persisting one activity event",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
