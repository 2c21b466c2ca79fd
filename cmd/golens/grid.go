package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/golens/pkg/diagram"
	"github.com/spf13/cobra"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the axis tick layout",
	Long:  "List every numbered tick with its value in grid units and its pixel position on the canvas.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(os.Stderr)
		if err != nil {
			return err
		}
		writeGrid(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func writeGrid(w io.Writer, cfg diagram.Config) {
	fmt.Fprintln(w, "Canvas:")
	fmt.Fprintf(w, "  Size: %.0f x %.0f px\n", cfg.Width, cfg.Height)
	fmt.Fprintf(w, "  Grid spacing: %.0f px\n", cfg.GridSpacing)
	fmt.Fprintf(w, "  Lens center: %s\n\n", formatPoint(cfg.Center()))

	fmt.Fprintln(w, "Ticks:")
	for _, tick := range diagram.Ticks(cfg) {
		axis := "x"
		mid := tick.Mark.From.Add(tick.Mark.To).Mul(0.5)
		if tick.Mark.From.X != tick.Mark.To.X {
			axis = "y"
		}
		fmt.Fprintf(w, "  %s %6s  at %s\n", axis, tick.Label.Text, formatPoint(mid))
	}
}
