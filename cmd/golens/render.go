package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/golens/pkg/export"
	"github.com/philipparndt/golens/pkg/optics"
	"github.com/spf13/cobra"
)

var (
	renderFlags    pointFlags
	renderOutput   string
	renderReadouts bool
	renderNoLabels bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the ray diagram to a PNG file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(os.Stderr)
		if err != nil {
			return err
		}
		ctrl, scene, err := buildScene(cfg, logger, renderFlags.options(cmd))
		if err != nil {
			return err
		}

		var opts []export.Option
		if renderNoLabels {
			opts = append(opts, export.WithoutLabels())
		} else if renderReadouts {
			opts = append(opts, export.WithReadouts(optics.Describe(ctrl.State().Optics, cfg.GridSpacing)))
		}

		if err := export.NewExporter(cfg, opts...).SavePNG(renderOutput, scene); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%.0fx%.0f)\n", renderOutput, cfg.Width, cfg.Height)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderFlags.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "diagram.png", "PNG file to write")
	renderCmd.Flags().BoolVar(&renderReadouts, "readouts", true, "print optics readouts in the corner")
	renderCmd.Flags().BoolVar(&renderNoLabels, "no-labels", false, "omit all text")
}
