// Package config reads gaugectl settings from the environment and gauge
// descriptions from YAML files.
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the process settings of gaugectl. Width and Height override
// the size of every loaded gauge when positive.
type Config struct {
	LogLevel  slog.Level `env:"GAUGE_LOG_LEVEL" envDefault:"info"`
	OutputDir string     `env:"GAUGE_OUTPUT_DIR" envDefault:"."`
	Width     float64    `env:"GAUGE_WIDTH"`
	Height    float64    `env:"GAUGE_HEIGHT"`
	Frames    int        `env:"GAUGE_FRAMES" envDefault:"30"`
}

// Read parses Config from the environment.
func Read() (Config, error) {
	return env.ParseAs[Config]()
}
