package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string  `env:"APP_ENV" envDefault:"development"`
	UsersFile   string  `env:"USERS_FILE" envDefault:"users.txt"`
	LogFile     string  `env:"LOG_FILE" envDefault:"czone.log"`
	CatalogFile string  `env:"CATALOG_FILE"`
	SeedAdmin   bool    `env:"SEED_ADMIN" envDefault:"true"`
	LoginRate   float64 `env:"LOGIN_RATE" envDefault:"5"`
	LoginBurst  int     `env:"LOGIN_BURST" envDefault:"5"`
	ClearScreen bool    `env:"CLEAR_SCREEN" envDefault:"true"`
	NoColor     bool    `env:"NO_COLOR"`
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.UsersFile == "" {
		return nil, fmt.Errorf("USERS_FILE must not be empty")
	}
	return cfg, nil
}

// Colored reports whether terminal output should carry ANSI colors.
func (c *Config) Colored() bool {
	return !c.NoColor
}
