// Package obs registers in-process scheduler and match metrics against a
// caller-supplied Prometheus registry. It never touches the default global
// registry and never serves an HTTP endpoint: exposing /metrics over a wire
// format is a host concern, not the core's.
package obs

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the counters and gauges of a running match: a Match
// updates EventsFired, HeapDepth and CurrentTick as its events fire, and a
// realtime.Runner updates TicksPerWallSecond. The Scheduler updates none.
type Metrics struct {
	EventsFired        *prometheus.CounterVec
	HeapDepth          prometheus.Gauge
	CurrentTick        prometheus.Gauge
	TicksPerWallSecond prometheus.Gauge
}

// Register creates and registers a Metrics set against reg, prefixing every
// metric name with the given namespace (e.g. "matchcore"). Registering the
// same namespace twice against the same registry panics, matching
// client_golang's own MustRegister contract.
func Register(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		EventsFired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_fired_total",
			Help:      "Number of scheduler events fired, by event type.",
		}, []string{"type"}),
		HeapDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scheduler_heap_depth",
			Help:      "Number of events currently pending in the scheduler heap.",
		}),
		CurrentTick: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_tick",
			Help:      "The scheduler's current simulated tick.",
		}),
		TicksPerWallSecond: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ticks_per_wall_second",
			Help:      "Simulated ticks advanced per wall-clock second in real-time mode.",
		}),
	}
	reg.MustRegister(m.EventsFired, m.HeapDepth, m.CurrentTick, m.TicksPerWallSecond)
	return m
}
