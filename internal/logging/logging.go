// Package logging builds the zap logger used across chessduel.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessduel/internal/config"
	chesserrors "github.com/lgbarn/chessduel/internal/errors"
)

// New builds a logger from the logging configuration. Output goes to standard
// error unless a file is configured. The TUI uses a file so log lines do not
// land on the screen.
func New(cfg *config.LoggingConfig) (*zap.Logger, error) {
	if cfg == nil {
		cfg = config.NewLoggingConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, chesserrors.Wrap(chesserrors.ErrInvalidConfig, err.Error())
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = !cfg.Development

	sink := "stderr"
	if cfg.File != "" {
		sink = cfg.File
	}
	zc.OutputPaths = []string{sink}
	zc.ErrorOutputPaths = []string{sink}

	logger, err := zc.Build()
	if err != nil {
		return nil, chesserrors.Wrapf(err, "build logger")
	}
	return logger, nil
}

// Nop returns a logger that discards everything, for tests and library defaults.
func Nop() *zap.Logger {
	return zap.NewNop()
}
