// Package corelog is the validation core's structured logging surface.
// The core never decides what "valid" means (spec.md §7), but several of
// its outcomes are diagnostic rather than programmatic — a message-imprint
// mismatch, a lenient RFC 3161 fallback — and spec.md §7 calls those out
// as WARN-worthy. corelog wraps github.com/willibrandon/mtlog so the core
// emits structured, leveled log events instead of writing to stderr
// directly.
package corelog

import (
	"context"
	"io"
	"os"

	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
	"github.com/willibrandon/mtlog/sinks"
)

// Logger is the logging capability injected as an explicit handle (in this
// module, timestamp.WithLogger) rather than reached for as a package-level
// singleton (spec.md's design note on replacing global providers with
// explicit handles applies to logging too).
type Logger interface {
	Debug(messageTemplate string, args ...any)
	DebugContext(ctx context.Context, messageTemplate string, args ...any)

	Info(messageTemplate string, args ...any)
	InfoContext(ctx context.Context, messageTemplate string, args ...any)

	Warn(messageTemplate string, args ...any)
	WarnContext(ctx context.Context, messageTemplate string, args ...any)

	Error(messageTemplate string, args ...any)
	ErrorContext(ctx context.Context, messageTemplate string, args ...any)

	ForContext(key string, value any) Logger
}

// LogLevel is the minimum level a Logger emits.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

type mtlogAdapter struct {
	logger core.Logger
}

// New returns a Logger writing to output at the given minimum level.
func New(output io.Writer, level LogLevel) Logger {
	consoleSink := sinks.NewConsoleSinkWithWriter(output)

	opts := []mtlog.Option{
		mtlog.WithSink(consoleSink),
		mtlog.WithTimestamp(),
		mtlog.WithProcess(),
	}

	switch level {
	case DebugLevel:
		opts = append(opts, mtlog.Debug())
	case InfoLevel:
		opts = append(opts, mtlog.Information())
	case WarnLevel:
		opts = append(opts, mtlog.Warning())
	case ErrorLevel:
		opts = append(opts, mtlog.Error())
	}

	return &mtlogAdapter{logger: mtlog.New(opts...)}
}

// NewDefault returns a Logger writing to stderr at WarnLevel, the level
// spec.md §7 requires for message-imprint mismatches without drowning
// callers in per-candidate verification noise.
func NewDefault() Logger {
	return New(os.Stderr, WarnLevel)
}

func (a *mtlogAdapter) Debug(messageTemplate string, args ...any) { a.logger.Debug(messageTemplate, args...) }
func (a *mtlogAdapter) DebugContext(ctx context.Context, messageTemplate string, args ...any) {
	a.logger.DebugContext(ctx, messageTemplate, args...)
}

func (a *mtlogAdapter) Info(messageTemplate string, args ...any) { a.logger.Info(messageTemplate, args...) }
func (a *mtlogAdapter) InfoContext(ctx context.Context, messageTemplate string, args ...any) {
	a.logger.InfoContext(ctx, messageTemplate, args...)
}

func (a *mtlogAdapter) Warn(messageTemplate string, args ...any) { a.logger.Warn(messageTemplate, args...) }
func (a *mtlogAdapter) WarnContext(ctx context.Context, messageTemplate string, args ...any) {
	a.logger.WarnContext(ctx, messageTemplate, args...)
}

func (a *mtlogAdapter) Error(messageTemplate string, args ...any) { a.logger.Error(messageTemplate, args...) }
func (a *mtlogAdapter) ErrorContext(ctx context.Context, messageTemplate string, args ...any) {
	a.logger.ErrorContext(ctx, messageTemplate, args...)
}

func (a *mtlogAdapter) ForContext(key string, value any) Logger {
	return &mtlogAdapter{logger: a.logger.ForContext(key, value)}
}

type nullLogger struct{}

// NewNull returns a Logger that discards everything, the default for
// tests that don't assert on log output.
func NewNull() Logger { return nullLogger{} }

func (nullLogger) Debug(string, ...any)                             {}
func (nullLogger) DebugContext(context.Context, string, ...any)     {}
func (nullLogger) Info(string, ...any)                              {}
func (nullLogger) InfoContext(context.Context, string, ...any)      {}
func (nullLogger) Warn(string, ...any)                              {}
func (nullLogger) WarnContext(context.Context, string, ...any)      {}
func (nullLogger) Error(string, ...any)                             {}
func (nullLogger) ErrorContext(context.Context, string, ...any)     {}
func (nullLogger) ForContext(key string, value any) Logger          { return nullLogger{} }
