// Package optional provides a generic present/absent container. An Option
// holds a value or nothing; the UnwrapOrLog family of methods extracts the
// payload and routes a failed extraction through a zap logger before
// aborting.
package optional

// Option holds a present value of type T, or no value at all. The zero
// value is None.
type Option[T any] struct {
	ok    bool
	value T
}

// Construct an option holding a value
func Some[T any](value T) Option[T] {
	return Option[T]{
		ok:    true,
		value: value,
	}
}

// Construct an empty option
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (option Option[T]) IsSome() bool {
	return option.ok
}

// IsNone reports whether the option is empty.
func (option Option[T]) IsNone() bool {
	return !option.ok
}

// Get returns the held value and whether it is present.
func (option Option[T]) Get() (T, bool) {
	return option.value, option.ok
}

// Value returns the held value, or T's zero value if the option is empty.
func (option Option[T]) Value() T {
	return option.value
}

// UnwrapOr returns the held value, or fallback if the option is empty.
func (option Option[T]) UnwrapOr(fallback T) T {
	if !option.ok {
		return fallback
	}
	return option.value
}

// Fixed diagnostics for the logging unwraps.
const (
	msgUnwrapOnNone     = "called `Option.UnwrapOrLog()` on a `None` value"
	msgUnwrapNoneOnSome = "called `Option.UnwrapNoneOrLog()` on a `Some` value"
)
