package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/golens/pkg/optics"
	"github.com/spf13/cobra"
)

type imageOptions struct {
	distance float64
	height   float64
	focal    float64
	pixels   bool
}

var imageOpts imageOptions

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Compute the image formed by a thin lens",
	Long: `Apply the thin-lens equation to an object and print the image it forms.
Distances are in grid units (one tick) unless --px is given. A positive focal
length is a converging lens, a negative one diverging.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImage(cmd.OutOrStdout(), imageOpts)
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)

	imageCmd.Flags().Float64VarP(&imageOpts.distance, "distance", "u", 0, "object distance from the lens")
	imageCmd.Flags().Float64VarP(&imageOpts.height, "height", "H", 1, "object height")
	imageCmd.Flags().Float64VarP(&imageOpts.focal, "focal", "f", 0, "signed focal length")
	imageCmd.Flags().BoolVar(&imageOpts.pixels, "px", false, "inputs are pixels; results are shown in grid units")

	imageCmd.MarkFlagRequired("distance")
	imageCmd.MarkFlagRequired("focal")
}

func runImage(w io.Writer, opts imageOptions) error {
	if opts.distance < 0 || opts.height < 0 {
		return fmt.Errorf("distance and height must not be negative")
	}

	unit := 1.0
	if opts.pixels {
		cfg, _, err := loadConfig(os.Stderr)
		if err != nil {
			return err
		}
		unit = cfg.GridSpacing
	}

	result := optics.ComputeImage(opts.distance, opts.height, opts.focal)

	fmt.Fprintln(w, "Thin Lens Image")
	fmt.Fprintln(w, "===============")
	for _, r := range optics.Describe(result, unit) {
		fmt.Fprintf(w, "  %s\n", r)
	}
	return nil
}
