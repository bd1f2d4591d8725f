// Package unwraplog makes failed unwraps visible in a structured log sink.
//
// The result and optional subpackages provide the two containers; each
// carries unwrap methods that, on the bad variant, write one record to a
// zap logger at fatal severity and then panic, so a service's terminating
// mistakes land in its log pipeline instead of only on stderr.
//
//	| plain accessor            | logging unwrap                    |
//	|---------------------------|-----------------------------------|
//	| Result.Unwrap()           | Result.UnwrapOrLog(log)           |
//	|                           | Result.ExpectOrLog(log, msg)      |
//	|                           | Result.UnwrapErrOrLog(log)        |
//	|                           | Result.ExpectErrOrLog(log, msg)   |
//	| Option.Get()              | Option.UnwrapOrLog(log)           |
//	|                           | Option.ExpectOrLog(log, msg)      |
//	|                           | Option.UnwrapNoneOrLog(log)       |
//	|                           | Option.ExpectNoneOrLog(log, msg)  |
//
// The record's message is the fixed or caller-supplied text; the offending
// payload is attached as a structured field ("error" or "value"), formatted
// through its error or Stringer implementation when it has one and %+v
// otherwise. The panic that follows carries no message by default; building
// with -tags unwraplog_verbosepanic repeats the logged diagnostic in the
// panic value.
//
// Building with -tags unwraplog_scope removes the logger argument from
// every method and sources the logger from zap's process global instead;
// see SetAmbient and UseGoLog.
//
// There is no recovery path. Callers that want to handle the bad variant
// should inspect the container instead of unwrapping it.
package unwraplog
