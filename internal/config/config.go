package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the binaries read from the environment.
// A .env file is honored when present (local development).
type Config struct {
	Addr        string `envconfig:"ADDR" default:":4000"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
