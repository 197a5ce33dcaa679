package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okranz/ratchet/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [definition]",
	Short: "Drive a machine interactively from its definition",
	Long: `Compiles the definition and steps the machine from standard input.
A blank line advances without an event, any other word is dispatched as an
event, and 'q', 'quit' or 'exit' ends the session.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetString("log-level")
		quiet, _ := cmd.Flags().GetBool("quiet")
		scriptPath, _ := cmd.Flags().GetString("script")
		strict, _ := cmd.Flags().GetBool("strict")
		watchMode, _ := cmd.Flags().GetBool("watch")
		metrics, _ := cmd.Flags().GetBool("metrics")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		if metricsAddr == "" {
			metricsAddr = config.MetricsAddr
		}

		opts := cli.RunOptions{
			DefPath:     args[0],
			ScriptPath:  scriptPath,
			Quiet:       quiet,
			Strict:      strict,
			Watch:       watchMode,
			Interactive: term.IsTerminal(int(os.Stdin.Fd())),
			Metrics:     metrics,
			MetricsAddr: metricsAddr,
			LogLevel:    logLevel,
		}

		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("script", "", "Replay a line script file instead of reading stdin")
	runCmd.Flags().Bool("strict", false, "Abort on the first rejected step")
	runCmd.Flags().BoolP("watch", "w", false, "Reload and restart when the definition changes")
	runCmd.Flags().Bool("metrics", false, "Expose Prometheus metrics and the live graph over HTTP")
	runCmd.Flags().String("metrics-addr", "", "Metrics listen address (defaults to RATCHET_METRICS_ADDR)")
}
