package def

// Rule is one transition in file form. An empty Event marks a rule that
// fires on event-less steps, matching the zero Trigger of the engine.
type Rule struct {
	From  string `yaml:"from" json:"from"`
	To    string `yaml:"to" json:"to"`
	Event string `yaml:"event,omitempty" json:"event,omitempty"`
}

// Definition is the file form of a machine: vocabulary, initial state, and
// the ordered transition table. States and Events are optional; when
// declared they pin the vocabulary so Validate can catch typos, and when
// omitted the vocabulary is whatever the rules mention.
type Definition struct {
	Name        string         `yaml:"name" json:"name"`
	Doc         string         `yaml:"doc,omitempty" json:"doc,omitempty"`
	Initial     string         `yaml:"initial" json:"initial"`
	States      []string       `yaml:"states,omitempty" json:"states,omitempty"`
	Events      []string       `yaml:"events,omitempty" json:"events,omitempty"`
	Transitions []Rule         `yaml:"transitions" json:"transitions"`
	Meta        map[string]any `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// Evented reports whether the definition describes an event-aware machine:
// either an event vocabulary is declared or at least one rule names an
// event.
func (d *Definition) Evented() bool {
	if len(d.Events) > 0 {
		return true
	}
	for _, r := range d.Transitions {
		if r.Event != "" {
			return true
		}
	}
	return false
}

// StateNames returns the state vocabulary: the declared States when
// present, otherwise every state mentioned by the initial state and the
// rules, in first-mention order.
func (d *Definition) StateNames() []string {
	if len(d.States) > 0 {
		return d.States
	}

	seen := make(map[string]bool)
	var names []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		names = append(names, s)
	}

	add(d.Initial)
	for _, r := range d.Transitions {
		add(r.From)
		add(r.To)
	}
	return names
}

// EventNames returns the event vocabulary: the declared Events when
// present, otherwise every event mentioned by the rules, in first-mention
// order.
func (d *Definition) EventNames() []string {
	if len(d.Events) > 0 {
		return d.Events
	}

	seen := make(map[string]bool)
	var names []string
	for _, r := range d.Transitions {
		if r.Event == "" || seen[r.Event] {
			continue
		}
		seen[r.Event] = true
		names = append(names, r.Event)
	}
	return names
}
