// Package logging builds the zap loggers used by the Zenith binaries.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mr-Dark-debug/zenith/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger from cfg. Output goes to stderr, plus cfg.File
// when set. verbose forces debug level.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	paths := []string{"stderr"}
	if cfg.File != "" {
		paths = append(paths, cfg.File)
	}
	return build(cfg, verbose, paths)
}

// ForTUI builds a logger that never writes to the terminal. Without a
// log file it returns a no-op logger.
func ForTUI(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	return build(cfg, verbose, []string{cfg.File})
}

func build(cfg config.LogConfig, verbose bool, paths []string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	zc.OutputPaths = paths
	zc.ErrorOutputPaths = paths

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
