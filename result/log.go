//go:build !unwraplog_scope

package result

import (
	"go.uber.org/zap"

	"github.com/unwraplog/unwraplog/internal/critlog"
)

// UnwrapOrLog returns the success value. If the result holds an error, the
// error is logged to log at fatal severity under the "error" field and the
// call panics.
func (result Result[T]) UnwrapOrLog(log *zap.Logger) T {
	if result.err != nil {
		return critlog.FailedWith[T](log, msgUnwrapOnErr, critlog.KeyError, result.err)
	}
	return result.value
}

// ExpectOrLog returns the success value. If the result holds an error, msg
// is logged verbatim with the error attached under the "error" field and
// the call panics.
func (result Result[T]) ExpectOrLog(log *zap.Logger, msg string) T {
	if result.err != nil {
		return critlog.FailedWith[T](log, msg, critlog.KeyError, result.err)
	}
	return result.value
}

// UnwrapErrOrLog returns the held error. If the result holds a success
// value instead, that value is logged under the "value" field and the call
// panics.
func (result Result[T]) UnwrapErrOrLog(log *zap.Logger) error {
	if result.err == nil {
		return critlog.FailedWith[error](log, msgUnwrapErrOnOK, critlog.KeyValue, result.value)
	}
	return result.err
}

// ExpectErrOrLog returns the held error. If the result holds a success
// value instead, msg is logged verbatim with that value attached under the
// "value" field and the call panics.
func (result Result[T]) ExpectErrOrLog(log *zap.Logger, msg string) error {
	if result.err == nil {
		return critlog.FailedWith[error](log, msg, critlog.KeyValue, result.value)
	}
	return result.err
}
