//go:build !unwraplog_scope

package optional

import (
	"go.uber.org/zap"

	"github.com/unwraplog/unwraplog/internal/critlog"
)

// UnwrapOrLog returns the held value. If the option is empty, a fixed
// message is logged to log at fatal severity and the call panics. There is
// no value to attach, so the record carries no payload field.
func (option Option[T]) UnwrapOrLog(log *zap.Logger) T {
	if !option.ok {
		return critlog.Failed[T](log, msgUnwrapOnNone)
	}
	return option.value
}

// ExpectOrLog returns the held value. If the option is empty, msg is logged
// verbatim and the call panics.
func (option Option[T]) ExpectOrLog(log *zap.Logger, msg string) T {
	if !option.ok {
		return critlog.Failed[T](log, msg)
	}
	return option.value
}

// UnwrapNoneOrLog succeeds, returning nothing, when the option is empty. If
// the option holds a value, that value is logged under the "value" field
// and the call panics.
func (option Option[T]) UnwrapNoneOrLog(log *zap.Logger) {
	if option.ok {
		critlog.FailedWith[struct{}](log, msgUnwrapNoneOnSome, critlog.KeyValue, option.value)
	}
}

// ExpectNoneOrLog succeeds, returning nothing, when the option is empty. If
// the option holds a value, msg is logged verbatim with that value attached
// under the "value" field and the call panics.
func (option Option[T]) ExpectNoneOrLog(log *zap.Logger, msg string) {
	if option.ok {
		critlog.FailedWith[struct{}](log, msg, critlog.KeyValue, option.value)
	}
}
