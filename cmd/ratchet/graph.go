package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okranz/ratchet/pkg/def"
	"github.com/okranz/ratchet/pkg/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [definition]",
	Short: "Export the machine diagram",
	Long:  `Loads the definition and writes a Mermaid state diagram (or Graphviz DOT) rendering of its transition table.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		d, err := def.Load(args[0])
		if err != nil {
			fmt.Printf("Error loading definition: %v\n", err)
			os.Exit(1)
		}

		g := graph.FromDef(d)
		var output string
		switch format {
		case "mermaid":
			output = g.Mermaid(nil)
		case "dot":
			output = g.DOT(nil)
		default:
			fmt.Printf("Unknown format %q (want mermaid or dot)\n", format)
			os.Exit(1)
		}

		if out == "" {
			fmt.Print(output)
			return
		}
		if err := os.WriteFile(out, []byte(output), 0644); err != nil {
			fmt.Printf("Error writing %s: %v\n", out, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format (mermaid, dot)")
	graphCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
}
