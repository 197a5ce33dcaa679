package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Ratchet.
func PrintBanner() {
	p := termenv.EnvColorProfile()
	// Teal-to-lime gradient, one shade per row.
	s1 := termenv.String("            _       _          _   ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("  _ __ __ _| |_ ___| |__   ___| |_ ").Foreground(p.Color("#34d399"))
	s3 := termenv.String(" | '__/ _` | __/ __| '_ \\ / _ \\ __|").Foreground(p.Color("#4ade80"))
	s4 := termenv.String(" | | | (_| | || (__| | | |  __/ |_ ").Foreground(p.Color("#a3e635"))
	s5 := termenv.String(" |_|  \\__,_|\\__\\___|_| |_|\\___|\\__|").Foreground(p.Color("#facc15"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
