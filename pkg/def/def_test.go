package def_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okranz/ratchet"
	"github.com/okranz/ratchet/pkg/def"
)

const turnstileYAML = `
name: turnstile
doc: Coin-operated turnstile.
initial: locked
states: [locked, unlocked]
events: [coin, push]
transitions:
  - {from: locked, to: unlocked, event: coin}
  - {from: unlocked, to: locked, event: push}
meta:
  script: [coin, push]
`

func TestParse(t *testing.T) {
	t.Run("Full Document", func(t *testing.T) {
		d, err := def.Parse([]byte(turnstileYAML))
		require.NoError(t, err)

		assert.Equal(t, "turnstile", d.Name)
		assert.Equal(t, "locked", d.Initial)
		assert.Equal(t, []string{"locked", "unlocked"}, d.States)
		assert.Equal(t, []string{"coin", "push"}, d.Events)
		require.Len(t, d.Transitions, 2)
		assert.Equal(t, def.Rule{From: "locked", To: "unlocked", Event: "coin"}, d.Transitions[0])
		assert.Contains(t, d.Meta, "script")
	})

	t.Run("Unknown Field Rejected", func(t *testing.T) {
		_, err := def.Parse([]byte("initial: a\ntransistions: []\n"))
		assert.Error(t, err)
	})

	t.Run("Empty Input", func(t *testing.T) {
		_, err := def.Parse(nil)
		assert.ErrorContains(t, err, "empty definition")
	})
}

func TestParseJSON(t *testing.T) {
	d, err := def.ParseJSON([]byte(`{"name":"blinker","initial":"off","transitions":[{"from":"off","to":"on"},{"from":"on","to":"off"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "blinker", d.Name)
	require.Len(t, d.Transitions, 2)

	_, err = def.ParseJSON([]byte(`{"initial":"off","bogus":true}`))
	assert.Error(t, err, "unknown fields must be rejected")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("YAML", func(t *testing.T) {
		d, err := def.Load(write("m.yaml", turnstileYAML))
		require.NoError(t, err)
		assert.Equal(t, "turnstile", d.Name)
	})

	t.Run("JSON", func(t *testing.T) {
		d, err := def.Load(write("m.json", `{"name":"j","initial":"a","transitions":[]}`))
		require.NoError(t, err)
		assert.Equal(t, "j", d.Name)
	})

	t.Run("Unsupported Extension", func(t *testing.T) {
		_, err := def.Load(write("m.toml", "initial = 'a'"))
		assert.ErrorContains(t, err, "unsupported definition format")
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := def.Load(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestDefinition_Evented(t *testing.T) {
	assert.False(t, (&def.Definition{
		Initial:     "a",
		Transitions: []def.Rule{{From: "a", To: "b"}},
	}).Evented())

	assert.True(t, (&def.Definition{
		Initial:     "a",
		Transitions: []def.Rule{{From: "a", To: "b", Event: "go"}},
	}).Evented(), "a rule event implies an event-aware machine")

	assert.True(t, (&def.Definition{
		Initial: "a",
		Events:  []string{"go"},
	}).Evented(), "a declared vocabulary implies an event-aware machine")
}

func TestDefinition_Vocabularies(t *testing.T) {
	d := &def.Definition{
		Initial: "idle",
		Transitions: []def.Rule{
			{From: "idle", To: "busy", Event: "work"},
			{From: "busy", To: "idle", Event: "rest"},
			{From: "busy", To: "busy", Event: "work"},
		},
	}

	assert.Equal(t, []string{"idle", "busy"}, d.StateNames(), "inferred states keep first-mention order")
	assert.Equal(t, []string{"work", "rest"}, d.EventNames(), "inferred events keep first-mention order")

	d.States = []string{"busy", "idle", "stuck"}
	assert.Equal(t, []string{"busy", "idle", "stuck"}, d.StateNames(), "declared states win over inference")
}

func TestDefinition_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := def.Parse([]byte(turnstileYAML))
		require.NoError(t, err)
		assert.NoError(t, d.Validate())
	})

	t.Run("Missing Initial", func(t *testing.T) {
		d := &def.Definition{Transitions: []def.Rule{{From: "a", To: "b"}}}
		err := d.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, `field "initial"`)
	})

	t.Run("Undeclared Names", func(t *testing.T) {
		d := &def.Definition{
			Initial: "ghost",
			States:  []string{"a", "b"},
			Events:  []string{"go"},
			Transitions: []def.Rule{
				{From: "a", To: "c"},
				{From: "a", To: "b", Event: "stop"},
			},
		}

		err := d.Validate()
		require.Error(t, err)

		errs := def.ValidationErrors(err)
		require.Len(t, errs, 3)
		assert.ErrorContains(t, errs[0], "not in declared states")
		assert.ErrorContains(t, errs[1], `"transitions[0].to"`)
		assert.ErrorContains(t, errs[2], "not in declared events")
	})

	t.Run("Empty Endpoints", func(t *testing.T) {
		d := &def.Definition{
			Initial:     "a",
			Transitions: []def.Rule{{From: "", To: ""}},
		}
		errs := def.ValidationErrors(d.Validate())
		require.Len(t, errs, 2)
	})

	t.Run("Duplicate Vocabulary Names", func(t *testing.T) {
		d := &def.Definition{
			Initial: "a",
			States:  []string{"a", "a"},
		}
		err := d.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "duplicate name")
	})
}

func TestDefinition_Ambiguities(t *testing.T) {
	d := &def.Definition{
		Initial: "a",
		Transitions: []def.Rule{
			{From: "a", To: "b", Event: "go"},
			{From: "a", To: "c", Event: "go"},
			{From: "a", To: "d"},
			{From: "a", To: "e", Event: "stop"},
			{From: "a", To: "f"},
		},
	}

	amb := d.Ambiguities()
	require.Len(t, amb, 2)

	assert.Equal(t, def.Ambiguity{From: "a", Event: "go", Winner: 0, Loser: 1}, amb[0])
	assert.Equal(t, def.Ambiguity{From: "a", Event: "", Winner: 2, Loser: 4}, amb[1])
	assert.Contains(t, amb[0].String(), `on "go"`)
	assert.Contains(t, amb[1].String(), "without an event")
}

func TestDefinition_Unreachable(t *testing.T) {
	t.Run("Island In Declared States", func(t *testing.T) {
		d := &def.Definition{
			Initial: "a",
			States:  []string{"a", "b", "x", "y"},
			Transitions: []def.Rule{
				{From: "a", To: "b"},
				{From: "x", To: "y"},
			},
		}
		assert.Equal(t, []string{"x", "y"}, d.Unreachable())
	})

	t.Run("Chains Count As Reachable", func(t *testing.T) {
		d := &def.Definition{
			Initial: "a",
			Transitions: []def.Rule{
				{From: "a", To: "b", Event: "go"},
				{From: "b", To: "c", Event: "go"},
				{From: "c", To: "a", Event: "go"},
			},
		}
		assert.Empty(t, d.Unreachable())
	})

	t.Run("Source-Only States", func(t *testing.T) {
		d := &def.Definition{
			Initial: "a",
			Transitions: []def.Rule{
				{From: "a", To: "b"},
				{From: "ghost", To: "a"},
			},
		}
		assert.Equal(t, []string{"ghost"}, d.Unreachable())
	})

	t.Run("No Initial", func(t *testing.T) {
		d := &def.Definition{States: []string{"a", "b"}}
		assert.Nil(t, d.Unreachable())
	})
}

func TestDefinition_Machine(t *testing.T) {
	t.Run("Compiles And Runs", func(t *testing.T) {
		d := &def.Definition{
			Initial: "red",
			Transitions: []def.Rule{
				{From: "red", To: "green"},
				{From: "green", To: "red"},
			},
		}

		var hops int
		m, err := d.Machine(ratchet.WithHandler(func(from, to string) { hops++ }))
		require.NoError(t, err)

		require.NoError(t, m.Step())
		assert.Equal(t, "green", m.Current())
		assert.Equal(t, 1, hops)
	})

	t.Run("Refuses Event-Aware Definitions", func(t *testing.T) {
		d, err := def.Parse([]byte(turnstileYAML))
		require.NoError(t, err)

		_, err = d.Machine()
		assert.ErrorContains(t, err, "event-aware")
	})
}

func TestDefinition_EventMachine(t *testing.T) {
	d, err := def.Parse([]byte(turnstileYAML))
	require.NoError(t, err)

	m := d.EventMachine()
	assert.Equal(t, "locked", m.Current())

	require.ErrorIs(t, m.StepEvent("push"), ratchet.ErrInvalidTransition)
	require.NoError(t, m.StepEvent("coin"))
	assert.Equal(t, "unlocked", m.Current())

	t.Run("Event-Less Definition Steps Plainly", func(t *testing.T) {
		d := &def.Definition{
			Initial:     "off",
			Transitions: []def.Rule{{From: "off", To: "on"}},
		}

		m := d.EventMachine()
		require.NoError(t, m.Step())
		assert.Equal(t, "on", m.Current())
		assert.ErrorIs(t, m.StepEvent("on"), ratchet.ErrInvalidTransition,
			"rules without events never match a named event")
	})

	t.Run("Rule Order Is Preserved", func(t *testing.T) {
		d := &def.Definition{
			Initial: "a",
			Transitions: []def.Rule{
				{From: "a", To: "b", Event: "go"},
				{From: "a", To: "c", Event: "go"},
			},
		}

		m := d.EventMachine()
		require.NoError(t, m.StepEvent("go"))
		assert.Equal(t, "b", m.Current())
	})
}
