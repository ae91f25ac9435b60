package grove

import "go.uber.org/zap"

// The package logger is a nop unless the host application injects one; core
// hot paths (matrix queries, dirty propagation) never log, only the loaders
// and resource constructors do.
var log = zap.NewNop()

// SetLogger installs the logger used by the scene and resource loaders for
// warnings about unsupported or skipped content. Passing nil restores the
// default no-op logger.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log = logger
}

// Logger returns the logger currently used by the package.
func Logger() *zap.Logger {
	return log
}
