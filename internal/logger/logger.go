// Package logger configures the zap structured logger used across the
// service.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a *zap.Logger so the rest of the application can hold a
// stable reference that starts as a no-op and is swapped in by Init.
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger backed by a no-op zap logger; call Init to make
// it real.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production zap logger at the given level ("debug",
// "info", "warn", "error") and installs it on the Logger.
func (l *Logger) Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = log
	return nil
}
