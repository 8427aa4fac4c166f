package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port: got=%q want=8080", cfg.Port)
	}
	if cfg.Chart.Width != 1650 || cfg.Chart.MaxHeight != 1400 {
		t.Fatalf("chart defaults: got=%+v", cfg.Chart)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "port: \"9090\"\ndataset_path: data/other.csv\nchart:\n  y_label_width: 30\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port: got=%q want=9090", cfg.Port)
	}
	if cfg.DatasetPath != "data/other.csv" {
		t.Fatalf("dataset path: got=%q", cfg.DatasetPath)
	}
	if cfg.Chart.YLabelWidth != 30 {
		t.Fatalf("y label width: got=%d want=30", cfg.Chart.YLabelWidth)
	}
	// Unset keys keep their defaults.
	if cfg.Chart.MaxBubblePx != 48 {
		t.Fatalf("max bubble px: got=%d want=48", cfg.Chart.MaxBubblePx)
	}
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PORT", "7070")
	t.Setenv("CHART_MAX_BUBBLE_PX", "60")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("port: got=%q want=7070", cfg.Port)
	}
	if cfg.Chart.MaxBubblePx != 60 {
		t.Fatalf("max bubble px: got=%d want=60", cfg.Chart.MaxBubblePx)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
