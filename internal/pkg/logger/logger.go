package logger

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const serviceName = "mahaatv"

var log = base(os.Stdout, zerolog.InfoLevel)

func base(out io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("service", serviceName).Logger()
}

// Init replaces the process logger. Unknown levels fall back to info and a
// nil out means stdout.
func Init(level string, pretty bool, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	log = base(out, lvl).With().Caller().Logger()
}

func Get() *zerolog.Logger { return &log }

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }

// Component returns a child logger tagged with a component name
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Session returns a child logger carrying the viewer session id
func Session(id uuid.UUID) zerolog.Logger {
	return log.With().Str("session_id", id.String()).Logger()
}

// WithFields returns logger with additional fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	return log.With().Fields(fields).Logger()
}
