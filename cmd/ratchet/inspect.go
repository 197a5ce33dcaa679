package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okranz/ratchet/internal/presentation/tui"
	"github.com/okranz/ratchet/pkg/def"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [definition]",
	Short: "Summarize a definition",
	Long: `Renders a human readable summary of the definition: its vocabulary, the
rules in priority order, and any problems or shadowed rules.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")
		noColor, _ := cmd.Flags().GetBool("no-color")

		d, err := def.Load(args[0])
		if err != nil {
			fmt.Printf("Error loading definition: %v\n", err)
			os.Exit(1)
		}

		md := summarize(d)

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			plain = true
		}
		render := tui.NewRenderer(plain || noColor)
		out, err := render(md)
		if err != nil {
			// Fall back to the raw markdown rather than losing the summary.
			fmt.Print(md)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("plain", false, "Print raw markdown without terminal styling")
}

func summarize(d *def.Definition) string {
	var b strings.Builder

	name := d.Name
	if name == "" {
		name = "(unnamed machine)"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)
	if d.Doc != "" {
		fmt.Fprintf(&b, "%s\n\n", d.Doc)
	}

	fmt.Fprintf(&b, "- Initial state: `%s`\n", d.Initial)
	fmt.Fprintf(&b, "- States: %s\n", codeList(d.StateNames()))
	if d.Evented() {
		fmt.Fprintf(&b, "- Events: %s\n", codeList(d.EventNames()))
	}

	fmt.Fprintf(&b, "\n## Rules\n\n")
	fmt.Fprintf(&b, "| # | From | Event | To |\n")
	fmt.Fprintf(&b, "|---|------|-------|----|\n")
	for i, r := range d.Transitions {
		event := r.Event
		if event == "" {
			event = "(none)"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, r.From, event, r.To)
	}

	if err := d.Validate(); err != nil {
		fmt.Fprintf(&b, "\n## Problems\n\n")
		if errs := def.ValidationErrors(err); errs != nil {
			for _, e := range errs {
				fmt.Fprintf(&b, "- %v\n", e)
			}
		} else {
			fmt.Fprintf(&b, "- %v\n", err)
		}
	}

	if amb := d.Ambiguities(); len(amb) > 0 {
		fmt.Fprintf(&b, "\n## Shadowed rules\n\n")
		for _, a := range amb {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}

	if unreachable := d.Unreachable(); len(unreachable) > 0 {
		fmt.Fprintf(&b, "\n## Unreachable states\n\n")
		for _, s := range unreachable {
			fmt.Fprintf(&b, "- `%s` cannot be reached from `%s`\n", s, d.Initial)
		}
	}

	return b.String()
}

func codeList(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, ", ")
}
