package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	d, err := cfg.Diagram()
	if err != nil {
		t.Fatalf("Diagram failed: %v", err)
	}
	if d.Width != 1200 || d.Height != 600 || d.GridSpacing != 50 || d.SnapThreshold != 3 {
		t.Errorf("unexpected defaults: %+v", d)
	}
	if d.PointRadius != 5 || d.FootRadius != 3 || d.FocalPrimePadding != 5 || d.HitRadius != 10 {
		t.Errorf("unexpected radius defaults: %+v", d)
	}
	if cfg.Watch || cfg.Preset != "" {
		t.Errorf("expected no preset and no watch, got %q / %v", cfg.Preset, cfg.Watch)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("GOLENS_WIDTH", "800")
	t.Setenv("GOLENS_GRID_SPACING", "40")
	t.Setenv("GOLENS_PRESET", "demo.yaml")
	t.Setenv("GOLENS_WATCH", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Width != 800 || cfg.GridSpacing != 40 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Preset != "demo.yaml" || !cfg.Watch {
		t.Errorf("expected preset demo.yaml with watch, got %q / %v", cfg.Preset, cfg.Watch)
	}
}

func TestLoadRejectsMalformedNumber(t *testing.T) {
	t.Setenv("GOLENS_HEIGHT", "tall")

	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric height")
	}
}

func TestDiagramValidates(t *testing.T) {
	t.Setenv("GOLENS_GRID_SPACING", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := cfg.Diagram(); err == nil {
		t.Error("expected validation error for zero grid spacing")
	}
}

func TestDiagramRejectsNonFinite(t *testing.T) {
	tests := []struct {
		env   string
		value string
	}{
		{"GOLENS_WIDTH", "Inf"},
		{"GOLENS_HEIGHT", "+Inf"},
		{"GOLENS_GRID_SPACING", "NaN"},
		{"GOLENS_SNAP_THRESHOLD", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.env+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if _, err := cfg.Diagram(); err == nil {
				t.Errorf("expected validation error for %s=%s", tt.env, tt.value)
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := &Config{LogLevel: "WARN"}
	if cfg.Level() != slog.LevelWarn {
		t.Fatalf("expected warn level, got %v", cfg.Level())
	}

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output:\n%s", out)
	}
}
