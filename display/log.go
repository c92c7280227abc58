package display

import (
	"context"
	"log/slog"
	"os"

	"github.com/tekert/golang-display/display/pkg/hexf"
)

// LogLevelTrace is below slog.LevelDebug. Per enumeration counts and buffer
// growth are logged at this level.
const LogLevelTrace = slog.Level(-8)

// The package logs through the slog default logger, correlation skips at
// Info and Debug, dropped records and release failures at Warn.

// SetLoggerHandler routes the package logs to h. A nil h leaves the current
// default logger in place.
func SetLoggerHandler(h slog.Handler) {
	if h != nil {
		slog.SetDefault(slog.New(h))
	}
}

// SetLoggerLevel sets the minimum level of the built in default handler.
// It has no effect once SetLoggerHandler installed another one.
func SetLoggerLevel(level slog.Level) {
	slog.SetLogLoggerLevel(level)
}

// SetDebugLevel logs everything from Debug up as text on stderr, with the
// source position of each call when addSource is set.
func SetDebugLevel(addSource bool) {
	SetLoggerHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: addSource,
	}))
}

// LogTrace logs msg at LogLevelTrace on the default logger.
func LogTrace(msg string, args ...any) {
	slog.Default().Log(context.Background(), LogLevelTrace, msg, args...)
}

// lazyHex defers hex encoding of EDID blocks until a handler keeps the record.
type lazyHex []byte

func (l lazyHex) LogValue() slog.Value {
	return slog.StringValue(hexf.EncodeToStringU(l))
}

type lazyState StateFlags

func (l lazyState) LogValue() slog.Value {
	return slog.StringValue(StateFlags(l).String())
}
