//go:build !unwraplog_verbosepanic

package critlog

// Quiet build (the default): the diagnostic already went to the log sink,
// so the panic itself carries no message.
func abortMessage(string) string {
	return ""
}
