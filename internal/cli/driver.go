package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/okranz/ratchet"
	"github.com/okranz/ratchet/pkg/def"
	"github.com/okranz/ratchet/pkg/graph"
	"github.com/okranz/ratchet/pkg/observe"
)

// Driver steps a compiled machine from a line-oriented input stream. A blank
// line advances without an event, any other word is dispatched as an event,
// and lines starting with ':' are driver commands rather than events.
//
// The driver itself touches the machine from a single goroutine; Snapshot
// and Steps are safe to call concurrently from the HTTP surface.
type Driver struct {
	Machine *ratchet.EventMachine[string, string]
	Def     *def.Definition

	In          io.Reader
	Out         io.Writer
	Logger      *slog.Logger
	Metrics     *observe.Metrics
	Quiet       bool
	Strict      bool
	Interactive bool

	mu      sync.Mutex
	steps   int
	current string
	visited map[string]bool
}

// NewDriver prepares a driver for the machine. The initial state counts as
// visited from the start, so an untouched session still renders an overlay.
func NewDriver(m *ratchet.EventMachine[string, string], d *def.Definition) *Driver {
	return &Driver{
		Machine: m,
		Def:     d,
		current: m.Current(),
		visited: map[string]bool{m.Current(): true},
	}
}

// Run reads input until EOF, a quit command, or ctx cancellation.
func (d *Driver) Run(ctx context.Context) error {
	d.say("Driving '%s' from state '%s'.", d.name(), d.Machine.Current())

	scanner := bufio.NewScanner(d.In)
	d.prompt()
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		quit, err := d.dispatch(scanner.Text())
		if err != nil && d.Strict {
			return err
		}
		if quit {
			return nil
		}
		d.prompt()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}
	return nil
}

// RunScript dispatches each line as if it had been typed. With Strict set,
// the first rejected step aborts the script and is returned.
func (d *Driver) RunScript(lines []string) error {
	for _, line := range lines {
		quit, err := d.dispatch(line)
		if err != nil && d.Strict {
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}

// dispatch handles one input line. It reports whether the session should end
// and any step rejection.
func (d *Driver) dispatch(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	switch line {
	case ":quit", "q", "quit", "exit":
		d.say("Bye!")
		return true, nil
	case ":state":
		fmt.Fprintf(d.Out, "%s\n", d.Machine.Current())
		return false, nil
	case ":table":
		d.printTable()
		return false, nil
	case "":
		return false, d.advance(ratchet.Trigger[string]{})
	default:
		if strings.HasPrefix(line, ":") {
			d.Logger.Warn("unknown command", "input", line)
			d.say("Unknown command '%s'.", line)
			return false, nil
		}
		return false, d.advance(ratchet.On(line))
	}
}

func (d *Driver) advance(trigger ratchet.Trigger[string]) error {
	from := d.Machine.Current()

	var err error
	if event, ok := trigger.Event(); ok {
		err = d.Machine.StepEvent(event)
	} else {
		err = d.Machine.Step()
	}
	if err != nil {
		if d.Metrics != nil {
			d.Metrics.Reject(d.name())
		}
		d.Logger.Warn("step rejected", "state", from, "event", trigger.String())
		if trigger.IsEvent() {
			d.say("No rule for event '%s' in state '%s'.", trigger, from)
		} else {
			d.say("No event-less rule in state '%s'.", from)
		}
		return err
	}

	to := d.Machine.Current()
	d.record(to)
	if trigger.IsEvent() {
		d.say("%s --> %s: %s", from, to, trigger)
	} else {
		d.say("%s --> %s", from, to)
	}
	return nil
}

func (d *Driver) record(state string) {
	d.mu.Lock()
	d.visited[state] = true
	d.current = state
	d.steps++
	d.mu.Unlock()
}

// Snapshot returns the drive progress as a diagram overlay, visited states
// sorted for stable rendering.
func (d *Driver) Snapshot() graph.Overlay {
	d.mu.Lock()
	defer d.mu.Unlock()
	visited := make([]string, 0, len(d.visited))
	for s := range d.visited {
		visited = append(visited, s)
	}
	sort.Strings(visited)
	return graph.Overlay{Current: d.current, Visited: visited}
}

// Steps returns the number of committed transitions so far.
func (d *Driver) Steps() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.steps
}

func (d *Driver) printTable() {
	if d.Def == nil {
		return
	}
	for _, r := range d.Def.Transitions {
		if r.Event != "" {
			fmt.Fprintf(d.Out, "%s --> %s: %s\n", r.From, r.To, r.Event)
		} else {
			fmt.Fprintf(d.Out, "%s --> %s\n", r.From, r.To)
		}
	}
}

func (d *Driver) prompt() {
	if d.Quiet || !d.Interactive {
		return
	}
	fmt.Fprintf(d.Out, "(%s) > ", d.Machine.Current())
}

func (d *Driver) say(format string, args ...any) {
	if d.Quiet {
		return
	}
	fmt.Fprintf(d.Out, ">>> %s\n", fmt.Sprintf(format, args...))
}

func (d *Driver) name() string {
	if d.Def == nil {
		return "machine"
	}
	return machineName(d.Def)
}
