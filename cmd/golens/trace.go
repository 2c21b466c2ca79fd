package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/golens/pkg/diagram"
	"github.com/philipparndt/golens/pkg/geometry"
	"github.com/philipparndt/golens/pkg/optics"
	"github.com/spf13/cobra"
)

var (
	traceFlags pointFlags
	traceJSON  bool
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print every diagram primitive for a layout",
	Long: `Build the diagram for the given control points and print the position,
points and visibility of every primitive, in pixels.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(os.Stderr)
		if err != nil {
			return err
		}
		ctrl, scene, err := buildScene(cfg, logger, traceFlags.options(cmd))
		if err != nil {
			return err
		}
		if traceJSON {
			return writeTraceJSON(cmd.OutOrStdout(), cfg, ctrl.State(), scene)
		}
		writeTrace(cmd.OutOrStdout(), cfg, ctrl.State(), scene)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceFlags.register(traceCmd)
	traceCmd.Flags().BoolVar(&traceJSON, "json", false, "print JSON instead of text")
}

type tracePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type tracePrimitive struct {
	ID       string       `json:"id"`
	Shape    string       `json:"shape"`
	Visible  bool         `json:"visible"`
	Position *tracePoint  `json:"position,omitempty"`
	Radius   float64      `json:"radius,omitempty"`
	Points   []tracePoint `json:"points,omitempty"`
}

type traceOutput struct {
	Lens         string           `json:"lens"`
	Image        string           `json:"image"`
	FocalLength  float64          `json:"focalLength"`
	OnLensPlane  bool             `json:"onLensPlane"`
	AtFocalPoint bool             `json:"atFocalPoint"`
	Readouts     []optics.Reading `json:"readouts"`
	Primitives   []tracePrimitive `json:"primitives"`
}

func newTraceOutput(cfg diagram.Config, state diagram.State, scene *diagram.Scene) traceOutput {
	out := traceOutput{
		Lens:         state.Optics.Lens.String(),
		Image:        state.Optics.Image.String(),
		FocalLength:  state.Lens.FocalLength,
		OnLensPlane:  state.OnLensPlane,
		AtFocalPoint: state.AtFocalPoint,
		Readouts:     optics.Describe(state.Optics, cfg.GridSpacing),
	}

	for _, p := range scene.Primitives() {
		tp := tracePrimitive{ID: p.ID.String(), Visible: p.Visible}
		switch p.Shape {
		case diagram.ShapePoint:
			tp.Shape = "point"
			tp.Position = &tracePoint{X: p.Position.X, Y: p.Position.Y}
			tp.Radius = p.Radius
		case diagram.ShapePolyline:
			tp.Shape = "polyline"
			if !p.Visible {
				break
			}
			for _, pt := range p.Points {
				tp.Points = append(tp.Points, tracePoint{X: pt.X, Y: pt.Y})
			}
		}
		out.Primitives = append(out.Primitives, tp)
	}
	return out
}

func writeTraceJSON(w io.Writer, cfg diagram.Config, state diagram.State, scene *diagram.Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newTraceOutput(cfg, state, scene)); err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	return nil
}

func writeTrace(w io.Writer, cfg diagram.Config, state diagram.State, scene *diagram.Scene) {
	fmt.Fprintln(w, "Ray Diagram")
	fmt.Fprintln(w, "===========")
	for _, r := range optics.Describe(state.Optics, cfg.GridSpacing) {
		fmt.Fprintf(w, "  %s\n", r)
	}
	switch {
	case state.OnLensPlane:
		fmt.Fprintln(w, "  Object on lens plane: image and rays hidden")
	case state.AtFocalPoint:
		fmt.Fprintln(w, "  Object at a focal point: image hidden")
	}

	fmt.Fprintln(w, "\nPrimitives:")
	for _, p := range scene.Primitives() {
		visibility := ""
		if !p.Visible {
			visibility = " (hidden)"
		}
		switch p.Shape {
		case diagram.ShapePoint:
			fmt.Fprintf(w, "  %-20s %s%s\n", p.ID, formatPoint(p.Position), visibility)
		case diagram.ShapePolyline:
			fmt.Fprintf(w, "  %-20s", p.ID)
			if !p.Visible {
				fmt.Fprintln(w, visibility)
				break
			}
			for i, pt := range p.Points {
				if i > 0 {
					fmt.Fprint(w, " ->")
				}
				fmt.Fprintf(w, " %s", formatPoint(pt))
			}
			fmt.Fprintf(w, "%s\n", visibility)
		}
	}
}

func formatPoint(p geometry.Point2) string {
	return fmt.Sprintf("(%s, %s)", optics.FormatLength(p.X), optics.FormatLength(p.Y))
}
