package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erondiel/pattern-generator/pkg/renderer"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in color palettes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-12s %-10s %s\n", "Name", "Track", "Background")
		for _, name := range renderer.Themes() {
			theme, err := renderer.ParseTheme(name)
			if err != nil {
				continue
			}
			track, background := theme.Colors()
			fmt.Printf("%-12s %-10s %s\n", name, track, background)
		}
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
