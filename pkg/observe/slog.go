package observe

import (
	"log/slog"

	"github.com/okranz/ratchet"
)

// Slog returns an event handler that logs every committed transition at
// Info level. The event attribute renders as "<none>" for event-less steps.
func Slog[S, E comparable](logger *slog.Logger) func(from, to S, trigger ratchet.Trigger[E]) {
	return func(from, to S, trigger ratchet.Trigger[E]) {
		logger.Info("transition", "from", from, "to", to, "event", trigger.String())
	}
}

// SlogPlain is Slog for event-less machines.
func SlogPlain[S comparable](logger *slog.Logger) func(from, to S) {
	return func(from, to S) {
		logger.Info("transition", "from", from, "to", to)
	}
}
