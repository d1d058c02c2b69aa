// Package logging builds the application logger. The terminal belongs to
// Bubble Tea while the program runs, so logs always go to a file; writing
// to stdout or stderr corrupts the rendered UI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New opens a JSON file logger at path. The file is created if missing and
// appended to otherwise.
func New(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything. Used by tests and as the
// fallback when no log path is configured.
func Nop() *zap.Logger {
	return zap.NewNop()
}
