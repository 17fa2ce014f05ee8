package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the application configuration: runtime environment, the
// default parameter-space sweep and the visualization output settings.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Scan configures the default parameter-space sweep.
	Scan struct {
		// XMin and XMax bound the x axis of the sweep, both endpoints inclusive.
		XMin float64 `env:"SCAN_X_MIN" env-default:"-1.0" yaml:"xMin"`
		XMax float64 `env:"SCAN_X_MAX" env-default:"1.0" yaml:"xMax"`
		// YMin and YMax bound the y axis of the sweep, both endpoints inclusive.
		YMin float64 `env:"SCAN_Y_MIN" env-default:"-1.0" yaml:"yMin"`
		YMax float64 `env:"SCAN_Y_MAX" env-default:"1.0" yaml:"yMax"`
		// Points is the number of samples per axis; the grid holds Points² nodes.
		Points int `env:"SCAN_POINTS" env-default:"200" yaml:"points"`
		// Workers bounds the goroutines evaluating grid rows; 0 means GOMAXPROCS.
		Workers int `env:"SCAN_WORKERS" env-default:"0" yaml:"workers"`
	} `yaml:"scan"`

	// Render configures the visualization outputs.
	Render struct {
		// OutputDir is the directory where PNG plots are written.
		OutputDir string `env:"RENDER_OUTPUT_DIR" env-default:"." yaml:"outputDir"`
		// Resolution is the per-axis sample count used for plot grids.
		Resolution int `env:"RENDER_RESOLUTION" env-default:"100" yaml:"resolution"`
		// ASCIIWidth is the per-axis character count of the text field map.
		ASCIIWidth int `env:"RENDER_ASCII_WIDTH" env-default:"40" yaml:"asciiWidth"`
	} `yaml:"render"`
}

// Load reads the yaml config file at configPath, applying environment
// variable overrides. When the file does not exist, configuration comes
// from the environment and the declared defaults alone, so a config file
// is optional for the CLI.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
