package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/onehealthlab/evidence-map/internal/platform/envutil"
)

// Config is the full service configuration. Values come from an optional
// YAML file, with environment variables taking precedence over both the
// file and the built-in defaults.
type Config struct {
	Port        string   `yaml:"port"`
	Mode        string   `yaml:"mode"` // gin/log mode: development or release
	DatasetPath string   `yaml:"dataset_path"`
	CORSOrigins []string `yaml:"cors_origins"`

	Chart ChartConfig `yaml:"chart"`
}

// ChartConfig carries the figure sizing knobs. Defaults reproduce the
// published layout; they are exposed mostly so the label wrap widths can
// be tuned without a rebuild when the taxonomy text changes.
type ChartConfig struct {
	Width         int `yaml:"width"`
	MaxHeight     int `yaml:"max_height"`
	RowHeight     int `yaml:"row_height"`
	BaseHeight    int `yaml:"base_height"`
	MaxBubblePx   int `yaml:"max_bubble_px"`
	YLabelWidth   int `yaml:"y_label_width"`
	XLabelWidth   int `yaml:"x_label_width"`
	LabelMaxLines int `yaml:"label_max_lines"`
}

func Default() Config {
	return Config{
		Port:        "8080",
		Mode:        "development",
		DatasetPath: "data/evidence.csv",
		CORSOrigins: []string{
			"http://localhost:8080",
			"http://127.0.0.1:8080",
		},
		Chart: ChartConfig{
			Width:         1650,
			MaxHeight:     1400,
			RowHeight:     24,
			BaseHeight:    120,
			MaxBubblePx:   48,
			YLabelWidth:   40,
			XLabelWidth:   24,
			LabelMaxLines: 3,
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist) and applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.Port = envutil.String("PORT", cfg.Port)
	cfg.Mode = envutil.String("APP_MODE", cfg.Mode)
	cfg.DatasetPath = envutil.String("DATASET_PATH", cfg.DatasetPath)
	cfg.Chart.MaxBubblePx = envutil.Int("CHART_MAX_BUBBLE_PX", cfg.Chart.MaxBubblePx)
	return cfg, nil
}
