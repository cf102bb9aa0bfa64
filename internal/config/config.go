// Package config loads application settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting for the API server.
type Config struct {
	Port    int      `env:"PORT" envDefault:"3000"`
	Origins []string `env:"ORIGIN" envSeparator:" " envDefault:"*"`

	DBDSN string `env:"DB_DSN" envDefault:"file:solbing.db?cache=shared"`

	JWTSecret          string   `env:"JWT_SECRET,required"`
	JWTExpirationHours int      `env:"JWT_EXPIRATION_HOURS" envDefault:"72"`
	JWTIssuer          string   `env:"JWT_ISSUER" envDefault:"solbing-api"`
	JWTAudience        []string `env:"JWT_AUDIENCE" envSeparator:" " envDefault:"solbing"`

	BcryptCost       int  `env:"BCRYPT_COST" envDefault:"12"`
	DeterministicIDs bool `env:"DETERMINISTIC_IDS" envDefault:"false"`

	// BodyLimit is the max request body size in bytes.
	BodyLimit int `env:"BODY_LIMIT" envDefault:"52428800"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
