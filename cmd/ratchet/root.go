package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okranz/ratchet/internal/cli"
)

var config *cli.Config

var rootCmd = &cobra.Command{
	Use:   "ratchet",
	Short: "Ratchet drives table-defined finite state machines",
	Long: `Ratchet compiles declarative transition tables into runnable state
machines. Definitions are YAML or JSON files; the CLI drives them
interactively, validates them, and exports diagrams.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor || config.NoColor {
			// termenv and glamour both honor this downstream.
			os.Setenv("NO_COLOR", "1")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cfg, err := cli.LoadConfig()
	if err != nil {
		cfg = &cli.Config{LogLevel: "info", MetricsAddr: ":9464"}
	}
	config = cfg

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", config.LogLevel, "Log verbosity (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress banner and transcript output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}
