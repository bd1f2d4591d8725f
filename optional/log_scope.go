//go:build unwraplog_scope

package optional

import (
	"github.com/unwraplog/unwraplog/internal/critlog"
)

// Scope build: the logger argument is dropped from every method and the
// process-global logger is used instead. Install one with
// unwraplog.SetAmbient (or zap.ReplaceGlobals) before unwrapping; the zap
// default global is a no-op and would swallow the record.

// UnwrapOrLog returns the held value. If the option is empty, a fixed
// message is logged to the ambient logger at fatal severity and the call
// panics. There is no value to attach, so the record carries no payload
// field.
func (option Option[T]) UnwrapOrLog() T {
	if !option.ok {
		return critlog.Failed[T](critlog.Ambient(), msgUnwrapOnNone)
	}
	return option.value
}

// ExpectOrLog returns the held value. If the option is empty, msg is logged
// verbatim and the call panics.
func (option Option[T]) ExpectOrLog(msg string) T {
	if !option.ok {
		return critlog.Failed[T](critlog.Ambient(), msg)
	}
	return option.value
}

// UnwrapNoneOrLog succeeds, returning nothing, when the option is empty. If
// the option holds a value, that value is logged under the "value" field
// and the call panics.
func (option Option[T]) UnwrapNoneOrLog() {
	if option.ok {
		critlog.FailedWith[struct{}](critlog.Ambient(), msgUnwrapNoneOnSome, critlog.KeyValue, option.value)
	}
}

// ExpectNoneOrLog succeeds, returning nothing, when the option is empty. If
// the option holds a value, msg is logged verbatim with that value attached
// under the "value" field and the call panics.
func (option Option[T]) ExpectNoneOrLog(msg string) {
	if option.ok {
		critlog.FailedWith[struct{}](critlog.Ambient(), msg, critlog.KeyValue, option.value)
	}
}
