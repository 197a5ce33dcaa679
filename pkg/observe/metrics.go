package observe

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okranz/ratchet"
)

// Metrics holds the Prometheus counters for machine activity. One Metrics
// value serves any number of machines, distinguished by the machine label.
type Metrics struct {
	transitions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg. The event
// label is empty for event-less steps.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratchet_transitions_total",
				Help: "Total number of committed transitions",
			},
			[]string{"machine", "from", "to", "event"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratchet_rejections_total",
				Help: "Total number of steps rejected as invalid transitions",
			},
			[]string{"machine"},
		),
	}
	reg.MustRegister(m.transitions, m.rejections)
	return m
}

// Observe records one committed transition. Pass an empty event for
// event-less steps.
func (m *Metrics) Observe(machine, from, to, event string) {
	m.transitions.WithLabelValues(machine, from, to, event).Inc()
}

// Reject records one failed step. The engine's handler never sees failed
// steps, so callers count them where they check for ErrInvalidTransition.
func (m *Metrics) Reject(machine string) {
	m.rejections.WithLabelValues(machine).Inc()
}

// MetricsHandler returns an event handler that records every committed
// transition of the named machine.
func MetricsHandler[S, E comparable](m *Metrics, machine string) func(from, to S, trigger ratchet.Trigger[E]) {
	return func(from, to S, trigger ratchet.Trigger[E]) {
		event := ""
		if ev, ok := trigger.Event(); ok {
			event = fmt.Sprintf("%v", ev)
		}
		m.Observe(machine, fmt.Sprintf("%v", from), fmt.Sprintf("%v", to), event)
	}
}

// MetricsHandlerPlain is MetricsHandler for event-less machines.
func MetricsHandlerPlain[S comparable](m *Metrics, machine string) func(from, to S) {
	return func(from, to S) {
		m.Observe(machine, fmt.Sprintf("%v", from), fmt.Sprintf("%v", to), "")
	}
}
