package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	Size   = "rc4_size"
	Layout = "rc4_layout"
	Kind   = "kind"
	Count  = "count"
)

type Config struct {
	Json  bool   `yaml:"json"`
	Level string `yaml:"level"`
}

func GetLogger(cfg *Config, app, appID string) zerolog.Logger {
	logger := CreateLogger(cfg, app, appID)
	zerolog.DefaultContextLogger = &logger
	return logger
}

// CreateLogger writes to stderr. Stdout is reserved for generated values.
func CreateLogger(cfg *Config, app, appID string) zerolog.Logger {
	return createLogger(os.Stderr, cfg, app, appID)
}

func createLogger(out io.Writer, cfg *Config, app, appID string) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.Json {
		logger = zerolog.New(out)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		})
	}
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)
	l := logger.With().Timestamp()
	if appID != "" {
		l = l.Str("app_id", appID)
	}
	if app != "" {
		l = l.Str("app", app)
	}

	logger = l.Logger()
	return logger
}
