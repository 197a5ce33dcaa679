package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings sourced from the environment.
// Flags override these values when set explicitly.
type Config struct {
	LogLevel    string `env:"RATCHET_LOG_LEVEL" envDefault:"info"`
	MetricsAddr string `env:"RATCHET_METRICS_ADDR" envDefault:":9464"`
	NoColor     bool   `env:"RATCHET_NO_COLOR" envDefault:"false"`
}

// LoadConfig reads configuration from the environment, honoring a local
// .env file when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
