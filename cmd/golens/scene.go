package main

import (
	"io"
	"log/slog"

	"github.com/philipparndt/golens/internal/config"
	"github.com/philipparndt/golens/internal/preset"
	"github.com/philipparndt/golens/pkg/diagram"
	"github.com/philipparndt/golens/pkg/geometry"
	"github.com/spf13/cobra"
)

// pointOptions positions the control points for trace and render
type pointOptions struct {
	preset      string
	objectX     *float64
	objectY     *float64
	focalPrimeX *float64
}

// pointFlags holds raw flag values until Changed tells which ones were given
type pointFlags struct {
	preset      string
	objectX     float64
	objectY     float64
	focalPrimeX float64
}

func (f *pointFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "YAML preset with the starting layout")
	cmd.Flags().Float64Var(&f.objectX, "object-x", 0, "object tip x in pixels")
	cmd.Flags().Float64Var(&f.objectY, "object-y", 0, "object tip y in pixels")
	cmd.Flags().Float64Var(&f.focalPrimeX, "focal-prime-x", 0, "focal-prime x in pixels")
}

func (f *pointFlags) options(cmd *cobra.Command) pointOptions {
	opts := pointOptions{preset: f.preset}
	if cmd.Flags().Changed("object-x") {
		opts.objectX = &f.objectX
	}
	if cmd.Flags().Changed("object-y") {
		opts.objectY = &f.objectY
	}
	if cmd.Flags().Changed("focal-prime-x") {
		opts.focalPrimeX = &f.focalPrimeX
	}
	return opts
}

// loadConfig reads GOLENS_* settings. The logger writes to stderr so that
// stdout stays clean for --json.
func loadConfig(stderr io.Writer) (diagram.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return diagram.Config{}, nil, err
	}
	d, err := cfg.Diagram()
	if err != nil {
		return diagram.Config{}, nil, err
	}
	return d, cfg.NewLogger(stderr), nil
}

// buildScene drives a controller into a Scene. Flag positions are applied as
// completed drags so they are clamped and snapped like pointer input.
func buildScene(cfg diagram.Config, logger *slog.Logger, opts pointOptions) (*diagram.Controller, *diagram.Scene, error) {
	layout := diagram.DefaultLayout(cfg)
	if opts.preset != "" {
		p, err := preset.Load(opts.preset, cfg)
		if err != nil {
			return nil, nil, err
		}
		layout = p.Layout
	}

	scene := diagram.NewScene()
	ctrl := diagram.NewController(cfg, scene, layout, diagram.WithLogger(logger))

	if opts.focalPrimeX != nil {
		ctrl.DragEnd(diagram.FocalPrimePoint, geometry.NewPoint2(*opts.focalPrimeX, cfg.AxisY()))
	}
	if opts.objectX != nil || opts.objectY != nil {
		target := ctrl.State().Object.Height
		if opts.objectX != nil {
			target.X = *opts.objectX
		}
		if opts.objectY != nil {
			target.Y = *opts.objectY
		}
		ctrl.DragEnd(diagram.ObjectPoint, target)
	}

	return ctrl, scene, nil
}
