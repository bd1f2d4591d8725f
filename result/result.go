// Package result provides a generic success/failure container. A Result
// holds either a success value or an error, never both; the UnwrapOrLog
// family of methods extracts the payload and routes a failed extraction
// through a zap logger before aborting.
package result

// Result can store either an error or a value - if err is nil, value may be
// read - otherwise, if err is non-nil, value should be considered invalid.
// The zero value is OK of T's zero value.
type Result[T any] struct {
	err   error
	value T
}

// Construct a result indicating success
func OK[T any](value T) Result[T] {
	return Result[T]{
		value: value,
	}
}

// Construct a result indicating error. Panics if err is nil - a result
// holds exactly one of the two variants, and a nil error is not a failure.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with a nil error")
	}
	return Result[T]{
		err: err,
	}
}

func (result Result[T]) Unwrap() (T, error) {
	return result.value, result.err
}

// IsOK reports whether the result holds a success value.
func (result Result[T]) IsOK() bool {
	return result.err == nil
}

// IsErr reports whether the result holds an error.
func (result Result[T]) IsErr() bool {
	return result.err != nil
}

// Value returns the success value, or T's zero value if the result holds an
// error.
func (result Result[T]) Value() T {
	return result.value
}

// Error returns the held error, or nil for a success result.
func (result Result[T]) Error() error {
	return result.err
}

// UnwrapOr returns the success value, or fallback if the result holds an
// error.
func (result Result[T]) UnwrapOr(fallback T) T {
	if result.err != nil {
		return fallback
	}
	return result.value
}

// Fixed diagnostics for the logging unwraps. The wording names the method
// that was misused so the record is greppable without a stack trace.
const (
	msgUnwrapOnErr   = "called `Result.UnwrapOrLog()` on an `Err` value"
	msgUnwrapErrOnOK = "called `Result.UnwrapErrOrLog()` on an `Ok` value"
)
