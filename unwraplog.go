package unwraplog

import (
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
)

// SetAmbient installs log as the process-global logger consumed by the
// scope build of the unwrap methods. It returns a function that restores
// the previous global. The global's lifecycle stays with the caller; this
// library only reads it.
func SetAmbient(log *zap.Logger) func() {
	return zap.ReplaceGlobals(log)
}

// UseGoLog routes the ambient logger through the named go-log subsystem,
// so unwrap diagnostics follow the process's go-log configuration (GOLOG_*
// environment, logging.SetLogLevel). It returns a function that restores
// the previous global.
func UseGoLog(system string) func() {
	return zap.ReplaceGlobals(logging.Logger(system).Desugar())
}
