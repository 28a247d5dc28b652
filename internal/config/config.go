package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode       bool     `env:"TEST_MODE"`
	Secret           string   `env:"SECRET,required"`
	PostgresqlURL    string   `env:"POSTGRESQL_URL,required"`
	BcryptHasherCost int      `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	HTTPAddress      string   `env:"HTTP_ADDRESS" envDefault:"0.0.0.0:9090"`
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return cfg, nil
}
