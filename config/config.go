package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"finances/internal/http"
	"finances/internal/sqlite"
)

type Config struct {
	LogLevel int `envconfig:"LOG_LEVEL" default:"-4"`

	// BalanceMaxAttempts bounds the commit retries of a single deposit
	// or withdrawal; 0 retries until the commit lands or a business
	// rule fails.
	BalanceMaxAttempts int `envconfig:"BALANCE_MAX_ATTEMPTS" default:"0"`

	Database sqlite.Config
	HTTP     http.Config
}

func Load() (Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	return config, nil
}
