package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the bike-share dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8980"`

	// Dataset configuration
	DataFile string `env:"DATA_FILE,default=./data/citibike_daily.csv"`

	// Map embedding configuration
	MapsDir    string `env:"MAPS_DIR,default=./maps"`
	DefaultMap string `env:"DEFAULT_MAP,default=top_50_stop_and_end_stations_heat.html"`

	// Dashboard defaults
	DefaultTopN int `env:"DEFAULT_TOP_N,default=20"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
