// Package plog is the process-wide diagnostic logger.
//
// Records at INFO and below go to stdout, WARN and above to stderr, unless the
// caller redirects them with SetOutputs or SetOutput. User-facing per-file
// lines are printed by the CLI; plog carries the diagnostics around them, most
// of which are DEBUG and only visible with --verbose.
package plog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Level aliases so callers don't need to import log/slog.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// levelDispatchHandler routes records to one of two handlers by level.
type levelDispatchHandler struct {
	stdoutHandler slog.Handler
	stderrHandler slog.Handler
}

func (h *levelDispatchHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.stdoutHandler.Enabled(ctx, level) || h.stderrHandler.Enabled(ctx, level)
}

func (h *levelDispatchHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		return h.stderrHandler.Handle(ctx, r)
	}
	return h.stdoutHandler.Handle(ctx, r)
}

func (h *levelDispatchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelDispatchHandler{
		stdoutHandler: h.stdoutHandler.WithAttrs(attrs),
		stderrHandler: h.stderrHandler.WithAttrs(attrs),
	}
}

func (h *levelDispatchHandler) WithGroup(name string) slog.Handler {
	return &levelDispatchHandler{
		stdoutHandler: h.stdoutHandler.WithGroup(name),
		stderrHandler: h.stderrHandler.WithGroup(name),
	}
}

var (
	level         = new(slog.LevelVar)
	defaultLogger *slog.Logger
)

func init() {
	level.Set(LevelInfo)
	SetOutputs(os.Stdout, os.Stderr)
}

// SetOutputs sends INFO and below to stdout and WARN and above to stderr.
func SetOutputs(stdout, stderr io.Writer) {
	defaultLogger = slog.New(&levelDispatchHandler{
		stdoutHandler: slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level}),
		stderrHandler: slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	})
}

// SetOutput sends every level to w.
func SetOutput(w io.Writer) {
	defaultLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLevel sets the minimum level that is logged.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetVerbose switches between DEBUG and INFO.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelInfo)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}
