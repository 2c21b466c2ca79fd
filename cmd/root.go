package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/philipparndt/golens/internal/app"
	"github.com/philipparndt/golens/internal/config"
	"github.com/philipparndt/golens/version"
	"github.com/spf13/cobra"
)

var (
	presetFile string
	watchFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "golens-raylib [preset]",
	Short: "Interactive thin-lens ray diagram",
	Long: `GoLens draws the three principal rays through a thin lens.
Drag the object tip or the focal point and the image follows.

Canvas settings are read from GOLENS_* environment variables.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.GetFullVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.Preset = args[0]
		}
		if cmd.Flags().Changed("preset") {
			cfg.Preset = presetFile
		}
		if cmd.Flags().Changed("watch") {
			cfg.Watch = watchFlag
		}

		diagramCfg, err := cfg.Diagram()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return app.Run(ctx, app.Options{
			Config:     diagramCfg,
			PresetFile: cfg.Preset,
			Watch:      cfg.Watch,
			Logger:     cfg.NewLogger(os.Stderr),
		})
	},
}

func init() {
	rootCmd.Flags().StringVarP(&presetFile, "preset", "p", "", "YAML preset with the starting layout")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "reload the preset when it changes")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
