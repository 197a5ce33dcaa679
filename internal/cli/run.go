package cli

import (
	"fmt"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	DefPath     string
	ScriptPath  string
	Quiet       bool
	Strict      bool
	Watch       bool
	Interactive bool
	Metrics     bool
	MetricsAddr string
	LogLevel    string
}

// Execute handles the 'run' command logic, dispatching to a single session
// or watch mode.
func Execute(opts RunOptions) error {
	if opts.Watch {
		if opts.ScriptPath != "" {
			return fmt.Errorf("--watch and --script cannot be used together")
		}
		if opts.Metrics {
			return fmt.Errorf("--watch and --metrics cannot be used together")
		}
		return RunWatch(opts)
	}
	return RunSession(opts)
}
