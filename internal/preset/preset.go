// Package preset reads starting layouts for the diagram from YAML files.
//
// A preset names the object tip and the focal-prime point, either in screen
// pixels or in grid units (origin at the lens center, y up). The focal-prime
// may instead be given as a signed focal length. Omitted values keep the
// default layout.
//
//	name: magnifier
//	units: grid
//	object: {x: -1, y: 1}
//	focal_length: 2
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/golens/pkg/diagram"
	"github.com/philipparndt/golens/pkg/geometry"
	"gopkg.in/yaml.v3"
)

const (
	UnitsPixels = "px"
	UnitsGrid   = "grid"
)

// File mirrors the YAML document
type File struct {
	Name        string   `yaml:"name"`
	Units       string   `yaml:"units"`
	Object      *Point   `yaml:"object"`
	FocalPrime  *Point   `yaml:"focal_prime"`
	FocalLength *float64 `yaml:"focal_length"`
}

// Point is a partially specified coordinate pair
type Point struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

// Preset is a resolved layout with its display name
type Preset struct {
	Name   string
	Layout diagram.Layout
}

// Load reads and resolves a preset file
func Load(path string, cfg diagram.Config) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}

	p, err := Parse(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML preset and resolves it against cfg
func Parse(data []byte, cfg diagram.Config) (*Preset, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	layout, err := file.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	return &Preset{Name: file.Name, Layout: layout}, nil
}

// Resolve fills omitted values from the default layout and converts to pixels
func (f File) Resolve(cfg diagram.Config) (diagram.Layout, error) {
	if f.FocalPrime != nil && f.FocalLength != nil {
		return diagram.Layout{}, fmt.Errorf("focal_prime and focal_length are mutually exclusive")
	}

	var toScreen, fromScreen func(geometry.Point2) geometry.Point2
	var focalScale float64
	switch f.Units {
	case "", UnitsPixels:
		toScreen = func(p geometry.Point2) geometry.Point2 { return p }
		fromScreen = toScreen
		focalScale = 1
	case UnitsGrid:
		toScreen = func(p geometry.Point2) geometry.Point2 { return diagram.FromGridUnits(cfg, p) }
		fromScreen = func(p geometry.Point2) geometry.Point2 { return diagram.ToGridUnits(cfg, p) }
		focalScale = cfg.GridSpacing
	default:
		return diagram.Layout{}, fmt.Errorf("unknown units %q (expected %q or %q)", f.Units, UnitsPixels, UnitsGrid)
	}

	layout := diagram.DefaultLayout(cfg)
	layout.Object = toScreen(f.Object.merge(fromScreen(layout.Object)))

	switch {
	case f.FocalLength != nil:
		layout.FocalPrime = geometry.NewPoint2(cfg.LensX()-*f.FocalLength*focalScale, cfg.AxisY())
	case f.FocalPrime != nil:
		if f.FocalPrime.Y != nil {
			return diagram.Layout{}, fmt.Errorf("focal_prime lies on the optical axis; only x may be set")
		}
		layout.FocalPrime = toScreen(f.FocalPrime.merge(fromScreen(layout.FocalPrime)))
	}

	if !layout.Object.IsFinite() || !layout.FocalPrime.IsFinite() {
		return diagram.Layout{}, fmt.Errorf("preset coordinates must be finite")
	}
	return layout, nil
}

// merge overrides the set coordinates of fallback
func (p *Point) merge(fallback geometry.Point2) geometry.Point2 {
	if p == nil {
		return fallback
	}
	if p.X != nil {
		fallback.X = *p.X
	}
	if p.Y != nil {
		fallback.Y = *p.Y
	}
	return fallback
}
