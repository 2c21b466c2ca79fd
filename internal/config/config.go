package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/philipparndt/golens/pkg/diagram"
)

// Prefix is prepended to every environment variable, e.g. GOLENS_WIDTH
const Prefix = "golens"

type Config struct {
	Width             float64 `envconfig:"WIDTH" default:"1200"`
	Height            float64 `envconfig:"HEIGHT" default:"600"`
	GridSpacing       float64 `envconfig:"GRID_SPACING" default:"50"`
	SnapThreshold     float64 `envconfig:"SNAP_THRESHOLD" default:"3"`
	PointRadius       float64 `envconfig:"POINT_RADIUS" default:"5"`
	FootRadius        float64 `envconfig:"FOOT_RADIUS" default:"3"`
	FocalPrimePadding float64 `envconfig:"FOCAL_PRIME_PADDING" default:"5"`
	HitRadius         float64 `envconfig:"HIT_RADIUS" default:"10"`
	LogLevel          string  `envconfig:"LOG_LEVEL" default:"info"`
	Preset            string  `envconfig:"PRESET"`
	Watch             bool    `envconfig:"WATCH" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	return &cfg, nil
}

// Diagram converts the loaded values into a validated diagram configuration
func (c *Config) Diagram() (diagram.Config, error) {
	d := diagram.Config{
		Width:             c.Width,
		Height:            c.Height,
		GridSpacing:       c.GridSpacing,
		SnapThreshold:     c.SnapThreshold,
		PointRadius:       c.PointRadius,
		FootRadius:        c.FootRadius,
		FocalPrimePadding: c.FocalPrimePadding,
		HitRadius:         c.HitRadius,
	}
	if err := d.Validate(); err != nil {
		return diagram.Config{}, fmt.Errorf("invalid diagram config: %w", err)
	}
	return d, nil
}

// Level parses LogLevel; unknown names fall back to info
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text logger at the configured level
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
