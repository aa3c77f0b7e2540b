// Package logging builds the zap logger shared by the demo binaries.
// The terminal UI owns stdout, so structured logs go to a side file.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a file-backed JSON logger at the given path.
func New(path string, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
		DisableCaller:    true,
	}
	return config.Build()
}

// Nop returns a logger that discards everything, for tests and for
// running without a log file.
func Nop() *zap.Logger {
	return zap.NewNop()
}
