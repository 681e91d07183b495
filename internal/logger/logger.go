package logger

import (
	"os"
	"strings"
	"time"

	"github.com/lshigami/juristudy/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs a human readable global logger. It runs before the config is
// loaded so the config loader itself can log.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Configure switches to JSON output in production and applies LOG_LEVEL.
func Configure(cfg *config.Config) {
	if cfg.IsProduction() {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel)))
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("logLevel", cfg.LogLevel).Msg("Unknown LOG_LEVEL, keeping info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Info().Str("level", level.String()).Msg("Logger configured")
}
