package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `env:"TTT_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Language string `env:"TTT_LANGUAGE" env-default:"es" validate:"oneof=es en"`
}

// Load - reads the configuration from the environment, every field has a default.
func Load() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load but panics on failure.
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}
