/*
Package observe attaches logging and metrics to machines through their step
handlers.

The engine deliberately has no observability of its own: a handler is the
single extension point on the step path. This package provides ready-made
handlers (structured logging via slog, Prometheus counters) and Join to
compose them with application handlers, so instrumented machines are built
the same way as plain ones:

	metrics := observe.NewMetrics(prometheus.DefaultRegisterer)

	m := ratchet.NewEventMachine(locked, table,
		ratchet.WithEventHandler(observe.Join(
			observe.Slog[Door, Input](logger),
			observe.MetricsHandler[Door, Input](metrics, "turnstile"),
			func(from, to Door, trigger ratchet.Trigger[Input]) {
				// application logic
			},
		)))

Handlers fire only on committed transitions. Rejected steps never reach a
handler, so rejection counting is the caller's job: check for
ErrInvalidTransition and call Metrics.Reject.
*/
package observe
