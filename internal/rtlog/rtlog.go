// Package rtlog provides the package-level structured logger shared by
// the renderer and the CLI commands.
package rtlog

import "go.uber.org/zap"

// Log is the shared logger. It defaults to a no-op logger so packages
// that log before Init is called (e.g. in tests) do not panic.
var Log = zap.NewNop()

// Init installs a production logger (JSON encoding, info level) as the
// package-level Log, or zap's development logger when debug is true.
// Call once from main before rendering.
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = logger
	return nil
}

// Sync flushes any buffered log entries. Call before process exit.
func Sync() {
	_ = Log.Sync()
}
