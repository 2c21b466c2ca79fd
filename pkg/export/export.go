// Package export rasterizes a diagram scene to an image using gg.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/philipparndt/golens/pkg/diagram"
	"github.com/philipparndt/golens/pkg/optics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Exporter draws the background, grid, axes and scene primitives
type Exporter struct {
	cfg      diagram.Config
	face     font.Face
	readouts []optics.Reading
	noLabels bool
}

// Option configures an Exporter
type Option func(*Exporter)

// WithReadouts prints readout lines in the top-left corner
func WithReadouts(readings []optics.Reading) Option {
	return func(e *Exporter) {
		e.readouts = readings
	}
}

// WithoutLabels skips all text (tick numbers, axis names and readouts)
func WithoutLabels() Option {
	return func(e *Exporter) {
		e.noLabels = true
	}
}

// NewExporter creates an exporter for the given canvas configuration
func NewExporter(cfg diagram.Config, opts ...Option) *Exporter {
	e := &Exporter{cfg: cfg, face: basicfont.Face7x13}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render draws the scene and returns the raster
func (e *Exporter) Render(scene *diagram.Scene) (*image.RGBA, error) {
	dc := gg.NewContext(int(e.cfg.Width), int(e.cfg.Height))
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(diagram.BackgroundColor))

	if err := e.drawGrid(dc); err != nil {
		return nil, err
	}
	if err := e.drawAxes(dc); err != nil {
		return nil, err
	}
	for _, p := range scene.Primitives() {
		if !p.Visible {
			continue
		}
		if err := e.drawPrimitive(dc, p); err != nil {
			return nil, fmt.Errorf("failed to draw %s: %w", p.ID, err)
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("failed to flush: %w", err)
	}
	img := toRGBA(dc.Image())
	if !e.noLabels {
		e.drawLabels(img)
	}
	return img, nil
}

// WritePNG renders the scene and encodes it as PNG
func (e *Exporter) WritePNG(w io.Writer, scene *diagram.Scene) error {
	img, err := e.Render(scene)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG renders the scene into a PNG file
func (e *Exporter) SavePNG(path string, scene *diagram.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := e.WritePNG(f, scene); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (e *Exporter) drawGrid(dc *gg.Context) error {
	dc.SetColor(diagram.GridColor)
	dc.SetLineWidth(1)
	for _, seg := range diagram.GridLines(e.cfg) {
		dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
	}
	return dc.Stroke()
}

func (e *Exporter) drawAxes(dc *gg.Context) error {
	dc.SetColor(diagram.AxisColor)
	dc.SetLineWidth(1)
	for _, seg := range diagram.Axes(e.cfg) {
		dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
	}
	for _, tick := range diagram.Ticks(e.cfg) {
		dc.DrawLine(tick.Mark.From.X, tick.Mark.From.Y, tick.Mark.To.X, tick.Mark.To.Y)
	}
	return dc.Stroke()
}

func (e *Exporter) drawPrimitive(dc *gg.Context, p diagram.Primitive) error {
	style := diagram.StyleOf(p.ID)
	dc.SetColor(style.Color)

	switch p.Shape {
	case diagram.ShapePoint:
		dc.DrawCircle(p.Position.X, p.Position.Y, p.Radius)
		return dc.Fill()

	case diagram.ShapePolyline:
		if len(p.Points) < 2 {
			return nil
		}
		dc.SetLineWidth(style.StrokeWidth)
		dc.MoveTo(p.Points[0].X, p.Points[0].Y)
		for _, pt := range p.Points[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		return dc.Stroke()
	}
	return nil
}

// drawLabels writes tick numbers, axis names and readouts onto the raster
func (e *Exporter) drawLabels(img *image.RGBA) {
	ascent := e.face.Metrics().Ascent.Ceil()

	for _, tick := range diagram.Ticks(e.cfg) {
		e.drawString(img, tick.Label.Text, int(tick.Label.At.X), int(tick.Label.At.Y)+ascent, diagram.AxisColor)
	}
	for _, label := range diagram.AxisLabels(e.cfg) {
		e.drawString(img, label.Text, int(label.At.X), int(label.At.Y)+ascent, diagram.AxisColor)
	}

	lineHeight := e.face.Metrics().Height.Ceil() + 2
	for i, r := range e.readouts {
		e.drawString(img, r.String(), 8, 8+ascent+i*lineHeight, diagram.AxisColor)
	}
}

func (e *Exporter) drawString(img *image.RGBA, s string, x, baseline int, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: e.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(baseline)},
	}
	d.DrawString(s)
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
		}
	}
	return dst
}
