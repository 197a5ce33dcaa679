package def

import "fmt"

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field  string // Field path, e.g. "transitions[2].from"
	Reason string // Human-readable reason for failure
	Value  any    // The offending value, if one exists
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %v)", e.Field, e.Reason, e.Value)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}

// Validate checks the definition for structural problems: a missing initial
// state, rules with empty endpoints, and names that fall outside a declared
// vocabulary. It does not reject ambiguous rules (see Ambiguities) and a
// valid definition may still describe a machine that can never advance;
// the engine takes tables as given.
func (d *Definition) Validate() error {
	var errs []error

	if d.Initial == "" {
		errs = append(errs, &ValidationError{Field: "initial", Reason: "required"})
	}

	states := stringSet("states", d.States, &errs)
	events := stringSet("events", d.Events, &errs)

	if len(d.States) > 0 && d.Initial != "" && !states[d.Initial] {
		errs = append(errs, &ValidationError{Field: "initial", Reason: "not in declared states", Value: d.Initial})
	}

	for i, r := range d.Transitions {
		if r.From == "" {
			errs = append(errs, &ValidationError{Field: fmt.Sprintf("transitions[%d].from", i), Reason: "required"})
		} else if len(d.States) > 0 && !states[r.From] {
			errs = append(errs, &ValidationError{Field: fmt.Sprintf("transitions[%d].from", i), Reason: "not in declared states", Value: r.From})
		}

		if r.To == "" {
			errs = append(errs, &ValidationError{Field: fmt.Sprintf("transitions[%d].to", i), Reason: "required"})
		} else if len(d.States) > 0 && !states[r.To] {
			errs = append(errs, &ValidationError{Field: fmt.Sprintf("transitions[%d].to", i), Reason: "not in declared states", Value: r.To})
		}

		if r.Event != "" && len(d.Events) > 0 && !events[r.Event] {
			errs = append(errs, &ValidationError{Field: fmt.Sprintf("transitions[%d].event", i), Reason: "not in declared events", Value: r.Event})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// stringSet builds a membership set from a declared vocabulary, appending a
// validation error for every duplicate name.
func stringSet(field string, names []string, errs *[]error) map[string]bool {
	set := make(map[string]bool, len(names))
	for i, n := range names {
		if n == "" {
			*errs = append(*errs, &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: "empty name"})
			continue
		}
		if set[n] {
			*errs = append(*errs, &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: "duplicate name", Value: n})
			continue
		}
		set[n] = true
	}
	return set
}

// Ambiguity reports a rule that can never fire because an earlier rule
// matches the same state and event pair first.
type Ambiguity struct {
	From   string
	Event  string // empty for event-less rules
	Winner int    // index of the rule that takes precedence
	Loser  int    // index of the shadowed rule
}

func (a Ambiguity) String() string {
	if a.Event == "" {
		return fmt.Sprintf("rule %d is shadowed by rule %d (both leave %q without an event)", a.Loser, a.Winner, a.From)
	}
	return fmt.Sprintf("rule %d is shadowed by rule %d (both leave %q on %q)", a.Loser, a.Winner, a.From, a.Event)
}

// Ambiguities lists rules shadowed by an earlier rule with the same from
// state and event. Shadowed rules are legal, the earlier rule simply wins,
// but they are usually a mistake, so tools surface them as warnings.
func (d *Definition) Ambiguities() []Ambiguity {
	type key struct{ from, event string }

	first := make(map[key]int)
	var out []Ambiguity
	for i, r := range d.Transitions {
		k := key{r.From, r.Event}
		if w, ok := first[k]; ok {
			out = append(out, Ambiguity{From: r.From, Event: r.Event, Winner: w, Loser: i})
			continue
		}
		first[k] = i
	}
	return out
}

// Unreachable lists states that no chain of rules can reach from the
// initial state, in vocabulary order. Rules leaving such states can never
// fire; like shadowed rules they are legal but usually a mistake.
func (d *Definition) Unreachable() []string {
	if d.Initial == "" {
		return nil
	}

	next := make(map[string][]string)
	for _, r := range d.Transitions {
		next[r.From] = append(next[r.From], r.To)
	}

	visited := map[string]bool{d.Initial: true}
	queue := []string{d.Initial}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, to := range next[cur] {
			if to == "" || visited[to] {
				continue
			}
			visited[to] = true
			queue = append(queue, to)
		}
	}

	var out []string
	for _, s := range d.StateNames() {
		if !visited[s] {
			out = append(out, s)
		}
	}
	return out
}
