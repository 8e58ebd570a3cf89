package binning

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/hupe1980/binning/histogram"
)

// Logger wraps slog.Logger with binning-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
// A nil w writes to stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// A nil w writes to stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
}

// WithShape adds the histogram bounds and bucket count to the logger.
func (l *Logger) WithShape(s histogram.Shape) *Logger {
	return &Logger{
		Logger: l.Logger.With("left", s.Left, "right", s.Right, "buckets", s.Buckets),
	}
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogBin logs a batch binning operation.
func (l *Logger) LogBin(ctx context.Context, samples, parts int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bin failed",
			"samples", samples,
			"parts", parts,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "bin completed",
			"samples", samples,
			"parts", parts,
		)
	}
}

// LogSummary logs the cell totals of a histogram.
func (l *Logger) LogSummary(ctx context.Context, h *histogram.Histogram) {
	l.InfoContext(ctx, "histogram summary",
		"total", h.Total(),
		"underflow", h.Underflow().Count(),
		"overflow", h.Overflow().Count(),
		"occupied", h.Occupied().GetCardinality(),
	)
}
