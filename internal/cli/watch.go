package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/okranz/ratchet/internal/presentation/tui"
	"github.com/okranz/ratchet/pkg/def"
)

// RunWatch drives the definition in a loop, recompiling whenever the file
// changes on disk. State does not survive a reload; the machine restarts
// from its initial state.
func RunWatch(opts RunOptions) error {
	logger := createLogger(opts.LogLevel, opts.Quiet)

	if !opts.Quiet && opts.Interactive {
		tui.PrintBanner()
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory. Editors often replace files on save,
	// which drops a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(opts.DefPath)); err != nil {
		return fmt.Errorf("watching %s: %w", opts.DefPath, err)
	}

	logger.Info("starting watcher", "path", opts.DefPath)
	if !opts.Quiet {
		printSystemMessage("Watching '%s'.", opts.DefPath)
	}

	for {
		if !runWatchIteration(sigCtx, opts, watcher, logger) {
			return nil
		}
		logger.Info("watcher restarting")
	}
}

func runWatchIteration(parentCtx *SignalContext, opts RunOptions, watcher *fsnotify.Watcher, logger *slog.Logger) bool {
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	d, err := def.Load(opts.DefPath)
	if err != nil {
		logger.Error("definition load failed", "err", err)
		return waitForChange(parentCtx, watcher, opts.DefPath, opts.Quiet, logger)
	}

	m, err := buildMachine(d, logger, nil)
	if err != nil {
		logger.Error("definition rejected", "err", err)
		return waitForChange(parentCtx, watcher, opts.DefPath, opts.Quiet, logger)
	}

	driver := NewDriver(m, d)
	driver.In = NewInterruptibleReader(os.Stdin, ctx.Done())
	driver.Out = os.Stdout
	driver.Logger = logger
	driver.Quiet = opts.Quiet
	driver.Strict = opts.Strict
	driver.Interactive = opts.Interactive

	reloadCh := watchForReload(ctx, cancel, watcher, opts.DefPath, opts.Quiet, logger)

	doneCh := make(chan error, 1)
	go func() {
		doneCh <- driver.Run(ctx)
	}()

	select {
	case <-parentCtx.Done():
		cancel()
		<-doneCh
		logCompletion(driver, context.Canceled, opts.Quiet, parentCtx.Signal())
		logger.Info("stopping watcher (signal received)", "signal", fmt.Sprint(parentCtx.Signal()))
		return false
	case <-reloadCh:
		if !opts.Quiet && opts.Interactive {
			printSystemMessage("Press Enter to reload.")
		}
		<-doneCh
		return true
	case runErr := <-doneCh:
		if runErr != nil {
			// A reload cancels the iteration context before input ends;
			// that is a restart, not a stop.
			if ctx.Err() != nil && parentCtx.Err() == nil {
				return true
			}
			if isInterrupted(runErr) {
				logCompletion(driver, runErr, opts.Quiet, parentCtx.Signal())
				return false
			}
			logger.Error("drive error", "err", runErr)
		} else {
			logCompletion(driver, nil, opts.Quiet, nil)
			if !opts.Quiet {
				printSystemMessage("Waiting for changes...")
			}
		}
		// The watchForReload goroutine stays the sole receiver on the
		// watcher's channels; a relevant change there cancels ctx.
		logger.Info("session finished, waiting for changes")
		if !awaitNextSession(parentCtx, ctx) {
			logCompletion(driver, context.Canceled, opts.Quiet, parentCtx.Signal())
			logger.Info("stopping watcher (signal received)", "signal", fmt.Sprint(parentCtx.Signal()))
			return false
		}
		return true
	}
}

// watchForReload starts the goroutine that owns the watcher's channels for
// the rest of the iteration. On the next relevant change to path it queues a
// token on the returned channel and cancels ctx.
func watchForReload(ctx context.Context, cancel context.CancelFunc, watcher *fsnotify.Watcher, path string, quiet bool, logger *slog.Logger) <-chan struct{} {
	reloadCh := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !sameFile(event.Name, path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if !quiet {
					fmt.Printf("\n")
					printSystemMessage("Change detected in '%s'.", path)
				}
				// Delay slightly to ensure the file system is stable
				time.Sleep(100 * time.Millisecond)
				select {
				case reloadCh <- struct{}{}:
				default:
				}
				cancel()
				return
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error", "err", werr)
			}
		}
	}()
	return reloadCh
}

// awaitNextSession blocks after a finished session until the iteration
// context is cancelled for a reload. It reports false when the parent
// context ended instead.
func awaitNextSession(parentCtx, ctx context.Context) bool {
	select {
	case <-parentCtx.Done():
		return false
	case <-ctx.Done():
		return parentCtx.Err() == nil
	}
}

// waitForChange blocks until the watched definition changes, so a broken
// file can be fixed without rerunning the command. It receives from the
// watcher directly and must not run while a watchForReload goroutine is
// draining the same channels.
func waitForChange(parentCtx *SignalContext, watcher *fsnotify.Watcher, path string, quiet bool, logger *slog.Logger) bool {
	if !quiet {
		printSystemMessage("Waiting for changes...")
	}
	for {
		select {
		case <-parentCtx.Done():
			return false
		case event, ok := <-watcher.Events:
			if !ok {
				return false
			}
			if !sameFile(event.Name, path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			time.Sleep(100 * time.Millisecond)
			return true
		case err, ok := <-watcher.Errors:
			if !ok {
				return false
			}
			logger.Warn("watch error", "err", err)
		}
	}
}

func sameFile(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == bb
}
