// Package logging carries a zerolog logger through context.Context and
// renders its events as colored console lines.
package logging

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type logKey struct{}

var nopLogger = zerolog.Nop()

// traces selects whether logged errors carry their eris stack trace
var traces atomic.Bool

func init() {
	zerolog.ErrorMarshalFunc = func(err error) interface{} {
		return eris.ToString(err, traces.Load())
	}
}

// FromContext returns the logger attached to ctx, or a no-op logger
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &nopLogger
	}
	logger, ok := ctx.Value(logKey{}).(*zerolog.Logger)
	if !ok || logger == nil {
		return &nopLogger
	}
	return logger
}

// WithLogger attaches the given logger to the context
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, logKey{}, logger)
}

// New creates a console logger writing to w. Verbose enables debug events.
// It also switches eris traces for logged errors on or off, process-wide.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	traces.Store(verbose)
	return zerolog.New(NewConsoleWriter(w, verbose)).Level(level).With().Timestamp().Logger()
}
