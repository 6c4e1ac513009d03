package config

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. Logs go to stderr so they never
// interleave with menu output on stdout.
func NewLogger(c Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", c.LogLevel, err)
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
