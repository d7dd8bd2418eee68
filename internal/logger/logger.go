// Package logger configures the process-wide zerolog logger. Application code
// logs through github.com/rs/zerolog/log after Setup has run.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs a JSON logger writing to stdout at the given level.
// Unknown levels fall back to info.
func Setup(level string) zerolog.Logger {
	return SetupWriter(os.Stdout, level)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(w).With().
		Str("service", "offerhub").
		Timestamp().
		Logger()
	log.Logger = l
	return l
}
