package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls where and how verbosely uxlab logs.
type Config struct {
	// Path is the log file. The TUI owns the terminal, so logs never go
	// to stdout/stderr. Empty disables logging.
	Path string

	// Verbose lowers the level to debug.
	Verbose bool
}

// New builds a JSON file logger. If the file cannot be opened the returned
// logger is a no-op; logging is never allowed to stop the app from starting.
func New(cfg Config) *zap.Logger {
	if cfg.Path == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return zap.NewNop()
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{cfg.Path}
	config.ErrorOutputPaths = []string{cfg.Path}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// DefaultPath places the log file next to the database.
func DefaultPath(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "uxlab.log")
}
