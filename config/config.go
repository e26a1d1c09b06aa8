package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds everything read from the environment.
type Config struct {
	Token string `env:"GITHUB_TOKEN,required,notEmpty"`
}

func Load() (*Config, error) {
	// A .env file is optional; the variable may be set directly.
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}
	return cfg, nil
}
