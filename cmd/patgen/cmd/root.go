package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "patgen",
	Short: "Procedural circuit-board pattern generator",
	Long: `patgen generates printed-circuit style patterns as SVG or PNG images:
random-walk "circuit" traces over a fixed lattice, or "bottom-up"
vertical traces branching at 45 degrees.

Examples:
  patgen generate                            # circuit pattern to pattern.svg
  patgen generate --type bottom-up -o bu.png # bottom-up pattern as PNG
  patgen generate --seed 1234 --grid         # reproducible, with debug overlay
  patgen view --type bottom-up               # interactive viewer
  patgen themes                              # list color palettes`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
