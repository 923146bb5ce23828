// Package logger wraps zap with a small lifecycle: construct, initialize
// with a level, use the embedded *zap.Logger everywhere.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger holds the application-wide zap logger.
type Logger struct {
	// Log is the underlying zap logger. It is a no-op until Init succeeds.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger so callers can safely
// defer Sync before Init runs.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init replaces the no-op logger with a production zap logger at the given
// level ("Debug", "Info", "Warn", "Error"; case-insensitive).
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
