package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Logger   Logger
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Dataset  Dataset
	Postgres Postgres
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"bnb-finder"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Logger struct {
	Level       slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	FieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}

func correctNewlines(s string) string {
	return strings.NewReplacer(`"`, "", `\n`, "\n").Replace(s)
}
