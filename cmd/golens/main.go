package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/golens/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golens",
	Short: "A command-line companion for the thin-lens ray diagram",
	Long: `golens computes thin-lens images and renders ray diagrams without a window.
It shares the diagram engine with golens-raylib and golens-gui, so traced and
rendered diagrams match what the interactive viewers show.

Canvas settings are read from GOLENS_* environment variables.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
