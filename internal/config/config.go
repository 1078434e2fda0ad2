package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Session  Session  `yaml:"session"`
}

type Server struct {
	Port string `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
}

type Database struct {
	DSN          string `yaml:"dsn" env:"DATABASE_DSN" env-default:"flights_user:flights_pass@tcp(localhost:3306)/flight_management?parseTime=true"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS" env-default:"5"`
	SeedDemo     bool   `yaml:"seed_demo" env:"DATABASE_SEED_DEMO" env-default:"true"`
}

type Session struct {
	Secret string `yaml:"secret" env:"SESSION_SECRET" env-default:"change-me-in-production"`
	MaxAge int    `yaml:"max_age" env:"SESSION_MAX_AGE" env-default:"86400"`
}

// Load reads config.yaml if present, with environment variables taking
// precedence either way.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	} else {
		cleanenv.ReadEnv(cfg)
	}

	return cfg, nil
}
