// Package telemetry wraps zerolog behind a small interface so core
// packages (search, decisionlist) can accept a logger without importing
// zerolog directly, and so tests can substitute a no-op implementation.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the structured-logging capability the search and
// decisionlist packages accept. Implementations must be safe for
// concurrent use, since search calls it from multiple worker
// goroutines.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

// zerologLogger adapts a zerolog.Logger to Logger.
type zerologLogger struct {
	log zerolog.Logger
}

// New builds a Logger writing JSON to w at the given minimum level
// ("debug", "info", "warn"; defaults to "info" on an unrecognized
// value).
func New(w io.Writer, level string) Logger {
	if w == nil {
		w = os.Stderr
	}
	l := zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
	return &zerologLogger{log: l}
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *zerologLogger) Debug(msg string, fields map[string]interface{}) {
	z.log.Debug().Fields(fields).Msg(msg)
}

func (z *zerologLogger) Info(msg string, fields map[string]interface{}) {
	z.log.Info().Fields(fields).Msg(msg)
}

func (z *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	z.log.Warn().Fields(fields).Msg(msg)
}

// nopLogger discards everything; used when a caller passes no Logger.
type nopLogger struct{}

// NewNop returns a Logger that discards all messages.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
