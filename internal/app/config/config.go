package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Wiki     Wiki       `mapstructure:",squash"`
	Weather  Weather    `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// Wiki holds settings for the encyclopedia summary lookup.
type Wiki struct {
	Lang    string        `mapstructure:"WIKI_LANG"`
	Timeout time.Duration `mapstructure:"WIKI_TIMEOUT"`
}

// Weather holds settings for the weather provider. APIKey has no default:
// when empty the process still starts and /clima fails per request.
type Weather struct {
	APIKey  string        `mapstructure:"WEATHER_API_KEY"`
	Lang    string        `mapstructure:"WEATHER_LANG"`
	Timeout time.Duration `mapstructure:"WEATHER_TIMEOUT"`
}
