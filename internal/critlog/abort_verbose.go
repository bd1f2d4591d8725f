//go:build unwraplog_verbosepanic

package critlog

// Verbose build: the panic message repeats the diagnostic that was logged.
func abortMessage(diag string) string {
	return diag
}
