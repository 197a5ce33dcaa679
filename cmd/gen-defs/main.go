package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/okranz/ratchet/pkg/def"
)

// Generates the example definition files shipped under examples/definitions.
// Run from the repository root:
//
//	go run ./cmd/gen-defs [target-dir]
func main() {
	targetDir := "examples/definitions"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating example definitions in: %s\n", targetDir)

	for _, ex := range exampleDefs() {
		check(ex.def.Validate())
		data, err := yaml.Marshal(ex.def)
		check(err)

		path := filepath.Join(targetDir, ex.name+".yaml")
		check(os.WriteFile(path, data, 0644))
		fmt.Printf("  wrote %s\n", path)
	}
}

type example struct {
	name string
	def  *def.Definition
}

func exampleDefs() []example {
	return []example{
		{
			name: "trafficlight",
			def: &def.Definition{
				Name:    "trafficlight",
				Doc:     "Event-less signal cycle. Every blank line advances one color.",
				Initial: "red",
				States:  []string{"red", "green", "yellow"},
				Transitions: []def.Rule{
					{From: "red", To: "green"},
					{From: "green", To: "yellow"},
					{From: "yellow", To: "red"},
				},
			},
		},
		{
			name: "turnstile",
			def: &def.Definition{
				Name:    "turnstile",
				Doc:     "The classic coin-operated turnstile. A coin unlocks it, a push through locks it again.",
				Initial: "locked",
				States:  []string{"locked", "unlocked"},
				Events:  []string{"coin", "push"},
				Transitions: []def.Rule{
					{From: "locked", To: "unlocked", Event: "coin"},
					{From: "unlocked", To: "locked", Event: "push"},
				},
			},
		},
		{
			name: "sensor",
			def: &def.Definition{
				Name:    "sensor",
				Doc:     "A field sensor that wakes up to take measurements and goes back to sleep when its timer expires.",
				Initial: "sleeping",
				States:  []string{"sleeping", "measuring"},
				Events:  []string{"meas_temp", "meas_moisture", "meas_both", "timer_expired"},
				Transitions: []def.Rule{
					{From: "sleeping", To: "measuring", Event: "meas_temp"},
					{From: "sleeping", To: "measuring", Event: "meas_moisture"},
					{From: "sleeping", To: "measuring", Event: "meas_both"},
					{From: "measuring", To: "sleeping", Event: "timer_expired"},
				},
				Meta: map[string]any{
					"run": map[string]any{
						"script": []string{
							"meas_temp",
							"timer_expired",
							"meas_both",
							"timer_expired",
						},
					},
				},
			},
		},
	}
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
