//go:build !unwraplog_verbosepanic

package critlog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Failed and FailedWith must write the record before panicking, and the
// fatal-hook override must keep zap from exiting the process.
func TestFailedLogsThenPanics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	require.PanicsWithValue(t, "", func() {
		Failed[struct{}](log, "it broke")
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.FatalLevel, entries[0].Level)
	require.Equal(t, "it broke", entries[0].Message)
	require.Empty(t, entries[0].ContextMap())
}

func TestFailedWithAttachesField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	require.PanicsWithValue(t, "", func() {
		FailedWith[struct{}](log, "it broke", KeyError, fmt.Errorf("disk full"))
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.FatalLevel, entries[0].Level)
	require.Equal(t, "it broke", entries[0].Message)
	require.Equal(t, map[string]interface{}{"error": "disk full"}, entries[0].ContextMap())
}

// A logger filtering at a level above Error still records the fatal entry.
func TestFatalNotFiltered(t *testing.T) {
	core, logs := observer.New(zapcore.FatalLevel)
	log := zap.New(core)

	require.PanicsWithValue(t, "", func() {
		Failed[struct{}](log, "it broke")
	})
	require.Equal(t, 1, logs.Len())
}
