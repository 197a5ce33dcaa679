package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okranz/ratchet/pkg/def"
)

var validateCmd = &cobra.Command{
	Use:   "validate [definition]",
	Short: "Check a definition for consistency",
	Long:  `Loads the definition and reports vocabulary violations and rules that can never fire.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Definition is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no definition file given")
	}

	d, err := def.Load(args[0])
	if err != nil {
		return err
	}

	if err := d.Validate(); err != nil {
		return err
	}

	// Shadowed rules and unreachable states are legal but usually a
	// mistake; warn, do not fail.
	for _, a := range d.Ambiguities() {
		fmt.Printf("Warning: %s\n", a)
	}
	for _, s := range d.Unreachable() {
		fmt.Printf("Warning: state %q is unreachable from %q\n", s, d.Initial)
	}
	return nil
}
