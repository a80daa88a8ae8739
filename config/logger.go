package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger sets up the global zerolog logger with a console writer.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)
}

// SetLogLevel applies the configured level, falling back to info on bad input.
func SetLogLevel(levelName string) {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
		log.Warn().Str("loglevel", levelName).Msg("Unknown log level, using info")
	}
	zerolog.SetGlobalLevel(level)
}
