package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/okranz/ratchet/internal/presentation/tui"
	"github.com/okranz/ratchet/pkg/def"
	"github.com/okranz/ratchet/pkg/observe"
)

// runProfile is the optional driver configuration a definition can carry in
// its metadata under the "run" key.
type runProfile struct {
	Script []string `mapstructure:"script"`
	Quiet  bool     `mapstructure:"quiet"`
}

func decodeRunProfile(meta map[string]any) (*runProfile, error) {
	raw, ok := meta["run"]
	if !ok {
		return nil, nil
	}
	p := &runProfile{}
	if err := mapstructure.Decode(raw, p); err != nil {
		return nil, fmt.Errorf("invalid run profile in metadata: %w", err)
	}
	return p, nil
}

// RunSession executes a single drive session over the definition.
func RunSession(opts RunOptions) error {
	logger := createLogger(opts.LogLevel, opts.Quiet)

	d, err := def.Load(opts.DefPath)
	if err != nil {
		return err
	}

	profile, err := decodeRunProfile(d.Meta)
	if err != nil {
		return err
	}
	quiet := opts.Quiet
	if profile != nil && profile.Quiet {
		quiet = true
	}

	// Input precedence: explicit script file, then the definition's own run
	// profile, then stdin.
	var script []string
	switch {
	case opts.ScriptPath != "":
		script, err = readScript(opts.ScriptPath)
		if err != nil {
			return err
		}
	case profile != nil && len(profile.Script) > 0:
		script = profile.Script
	}

	if !quiet && opts.Interactive && script == nil {
		tui.PrintBanner()
	}

	var reg *prometheus.Registry
	var metrics *observe.Metrics
	if opts.Metrics {
		reg = prometheus.NewRegistry()
		metrics = observe.NewMetrics(reg)
	}

	m, err := buildMachine(d, logger, metrics)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	driver := NewDriver(m, d)
	driver.Out = os.Stdout
	driver.Logger = logger
	driver.Metrics = metrics
	driver.Quiet = quiet
	driver.Strict = opts.Strict
	driver.Interactive = opts.Interactive

	if opts.Metrics {
		srv := NewServer(opts.MetricsAddr, reg, driver, logger)
		srv.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("metrics server shutdown", "err", err)
			}
		}()
		logger.Info("metrics server listening", "addr", opts.MetricsAddr)
	}

	var runErr error
	if script != nil {
		runErr = driver.RunScript(script)
	} else {
		driver.In = NewInterruptibleReader(os.Stdin, sigCtx.Done())
		runErr = driver.Run(sigCtx)
	}

	// If a signal landed while the driver was finishing, surface it.
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	logCompletion(driver, runErr, quiet, sigCtx.Signal())
	return handleExecutionError(runErr)
}

func readScript(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	// Only the file's final newline is trimmed. Interior and trailing blank
	// lines are real input: they step event-less machines.
	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	return lines, nil
}
