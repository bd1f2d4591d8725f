//go:build unwraplog_scope

package result

import (
	"github.com/unwraplog/unwraplog/internal/critlog"
)

// Scope build: the logger argument is dropped from every method and the
// process-global logger is used instead. Install one with
// unwraplog.SetAmbient (or zap.ReplaceGlobals) before unwrapping; the zap
// default global is a no-op and would swallow the record.

// UnwrapOrLog returns the success value. If the result holds an error, the
// error is logged to the ambient logger at fatal severity under the "error"
// field and the call panics.
func (result Result[T]) UnwrapOrLog() T {
	if result.err != nil {
		return critlog.FailedWith[T](critlog.Ambient(), msgUnwrapOnErr, critlog.KeyError, result.err)
	}
	return result.value
}

// ExpectOrLog returns the success value. If the result holds an error, msg
// is logged verbatim with the error attached under the "error" field and
// the call panics.
func (result Result[T]) ExpectOrLog(msg string) T {
	if result.err != nil {
		return critlog.FailedWith[T](critlog.Ambient(), msg, critlog.KeyError, result.err)
	}
	return result.value
}

// UnwrapErrOrLog returns the held error. If the result holds a success
// value instead, that value is logged under the "value" field and the call
// panics.
func (result Result[T]) UnwrapErrOrLog() error {
	if result.err == nil {
		return critlog.FailedWith[error](critlog.Ambient(), msgUnwrapErrOnOK, critlog.KeyValue, result.value)
	}
	return result.err
}

// ExpectErrOrLog returns the held error. If the result holds a success
// value instead, msg is logged verbatim with that value attached under the
// "value" field and the call panics.
func (result Result[T]) ExpectErrOrLog(msg string) error {
	if result.err == nil {
		return critlog.FailedWith[error](critlog.Ambient(), msg, critlog.KeyValue, result.value)
	}
	return result.err
}
