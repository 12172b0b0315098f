// Package config loads runtime configuration from the environment,
// preceded by an optional .env file.
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsing is returned when environment variables cannot be parsed into
// the config struct.
var ErrParsing = errors.New("config: failed to parse environment variables")

// Config holds machine-wide runtime settings.
type Config struct {
	// InputTimeout bounds each customer input read.
	InputTimeout time.Duration `env:"VEND_INPUT_TIMEOUT" envDefault:"5s"`
	// AdminInputTimeout bounds each admin-mode input read, configured
	// independently from the customer timeout.
	AdminInputTimeout time.Duration `env:"VEND_ADMIN_INPUT_TIMEOUT" envDefault:"30s"`
	// CatalogPath points to a YAML catalog seed. Empty means the
	// embedded default catalog.
	CatalogPath    string `env:"VEND_CATALOG_PATH"`
	DefaultAdminID string `env:"VEND_DEFAULT_ADMIN_ID" envDefault:"admin"`
	LogLevel       string `env:"VEND_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"VEND_LOG_FORMAT" envDefault:"text"`
}

// Load parses configuration from the process environment. A missing .env
// file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsing, err)
	}
	return cfg, nil
}
