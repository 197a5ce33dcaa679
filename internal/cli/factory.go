package cli

import (
	"fmt"
	"log/slog"

	"github.com/okranz/ratchet"
	"github.com/okranz/ratchet/pkg/def"
	"github.com/okranz/ratchet/pkg/observe"
)

// buildMachine compiles a validated definition into an event machine with
// the standard CLI observers attached.
//
// Event-less definitions compile to an event machine too. Their rules never
// bind an event, so blank-line steps drive them and typed words are rejected,
// which is exactly the drive loop contract.
func buildMachine(d *def.Definition, logger *slog.Logger, metrics *observe.Metrics) (*ratchet.EventMachine[string, string], error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	for _, a := range d.Ambiguities() {
		logger.Warn("rule is unreachable", "detail", a.String())
	}

	handlers := []func(from, to string, trigger ratchet.Trigger[string]){
		observe.Slog[string, string](logger),
	}
	if metrics != nil {
		handlers = append(handlers, observe.MetricsHandler[string, string](metrics, machineName(d)))
	}

	return d.EventMachine(ratchet.WithEventHandler(observe.Join(handlers...))), nil
}

// machineName is the label used in logs and metrics when a definition has no
// name of its own.
func machineName(d *def.Definition) string {
	if d.Name != "" {
		return d.Name
	}
	return "machine"
}
