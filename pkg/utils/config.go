package utils

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime configuration. Values come from the environment;
// main loads a .env file first so local development needs no exported vars.
type Config struct {
	Addr            string        `env:"POKEHUB_ADDR" env-default:":8080"`
	UpstreamBaseURL string        `env:"POKEHUB_UPSTREAM_URL" env-default:"https://pokeapi.co/api/v2"`
	UpstreamTimeout time.Duration `env:"POKEHUB_UPSTREAM_TIMEOUT" env-default:"12s"`
	UpstreamRPS     int           `env:"POKEHUB_UPSTREAM_RPS" env-default:"20"`
	UserAgent       string        `env:"POKEHUB_USER_AGENT" env-default:"pokehub/1.0"`
	DefaultLanguage string        `env:"POKEHUB_DEFAULT_LANGUAGE" env-default:"es"`
	LogLevel        string        `env:"POKEHUB_LOG_LEVEL" env-default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
