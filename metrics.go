package guinness

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the dispatcher's Prometheus instruments. A nil *Metrics
// records nothing.
type Metrics struct {
	Ticks          prometheus.Counter
	Callbacks      *prometheus.CounterVec // kind, event, mode
	InFlight       *prometheus.GaugeVec   // pool
	CaptureChanges prometheus.Counter
}

// NewMetrics creates the instruments and registers them on reg.
// A nil reg creates unregistered instruments.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Ticks: f.NewCounter(prometheus.CounterOpts{
			Namespace: "guinness",
			Subsystem: "dispatcher",
			Name:      "ticks_total",
			Help:      "Number of dispatch loop passes.",
		}),
		Callbacks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guinness",
			Subsystem: "dispatcher",
			Name:      "callbacks_total",
			Help:      "Component callbacks triggered, by component kind, event and execution mode.",
		}, []string{"kind", "event", "mode"}),
		InFlight: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "guinness",
			Subsystem: "dispatcher",
			Name:      "callbacks_in_flight",
			Help:      "Callbacks currently running on a worker pool.",
		}, []string{"pool"}),
		CaptureChanges: f.NewCounter(prometheus.CounterOpts{
			Namespace: "guinness",
			Subsystem: "dispatcher",
			Name:      "capture_changes_total",
			Help:      "Times keyboard capture moved to another text field or was released.",
		}),
	}
}

func (m *Metrics) recordTick() {
	if m == nil {
		return
	}
	m.Ticks.Inc()
}

func (m *Metrics) recordCallback(kind, event, mode string) {
	if m == nil {
		return
	}
	m.Callbacks.WithLabelValues(kind, event, mode).Inc()
}

func (m *Metrics) recordCapture() {
	if m == nil {
		return
	}
	m.CaptureChanges.Inc()
}

func (m *Metrics) inFlight(pool string) prometheus.Gauge {
	if m == nil {
		return nil
	}
	return m.InFlight.WithLabelValues(pool)
}
