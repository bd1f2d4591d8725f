//go:build !unwraplog_scope && unwraplog_verbosepanic

package result

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Verbose build: the panic value repeats the diagnostic that was logged.
func TestUnwrapOrLogErrVerbosePanic(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	require.PanicsWithValue(t, "called `Result.UnwrapOrLog()` on an `Err` value: disk full", func() {
		Err[string](fmt.Errorf("disk full")).UnwrapOrLog(log)
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.FatalLevel, entries[0].Level)
	require.Equal(t, map[string]interface{}{"error": "disk full"}, entries[0].ContextMap())
}

func TestExpectOrLogVerbosePanic(t *testing.T) {
	core, _ := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	require.PanicsWithValue(t, "must have a value: bad", func() {
		Err[int](fmt.Errorf("bad")).ExpectOrLog(log, "must have a value")
	})
}
