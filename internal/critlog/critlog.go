// Package critlog is the shared log-and-abort path behind the container
// unwrap methods. Every entry point writes exactly one record at zap's
// highest severity and then panics; the panic message is selected at build
// time (see abort_quiet.go and abort_verbose.go).
package critlog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field keys used when a container payload is attached to a record.
const (
	KeyError = "error"
	KeyValue = "value"
)

// Failed logs msg at fatal severity and panics. The type parameter only
// exists so call sites can use Failed in return position; no value of T is
// ever produced.
func Failed[T any](log *zap.Logger, msg string) T {
	emit(log, msg)
	panic(abortMessage(msg))
}

// FailedWith logs msg at fatal severity, attaching the formatted payload as
// a string field under key, and panics.
func FailedWith[T any](log *zap.Logger, msg, key string, value any) T {
	diag := FormatValue(value)
	emit(log, msg, zap.String(key, diag))
	panic(abortMessage(msg + ": " + diag))
}

// FormatValue renders a container payload for logging. Errors and Stringers
// know how to display themselves; anything else falls back to the %+v debug
// form.
func FormatValue(value any) string {
	switch v := value.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%+v", value)
	}
}

// Ambient returns the process-global logger consumed by the scope build of
// the unwrap methods. Its lifecycle belongs to the caller, via
// zap.ReplaceGlobals or the helpers in the root package.
func Ambient() *zap.Logger {
	return zap.L()
}

// noExit satisfies zapcore.CheckWriteHook without terminating the process.
// It must be a distinct type: zap coerces the predefined WriteThenNoop
// sentinel back to WriteThenFatal for Fatal-level entries, which would turn
// our panic into an os.Exit(1).
type noExit struct{}

func (noExit) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {}

// emit writes one record at FatalLevel without letting zap terminate the
// process; the abort that follows is this package's panic, not the logger's
// fatal hook. Fatal is never filtered by level routing, so the record
// reaches the sink even when lower severities are suppressed. The caller
// skip makes a caller-enabled logger report the unwrap call site rather
// than this file.
func emit(log *zap.Logger, msg string, fields ...zap.Field) {
	log.WithOptions(zap.WithFatalHook(noExit{}), zap.AddCallerSkip(3)).Fatal(msg, fields...)
}
