// Package logging builds the zap logger used by lined.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iw2rmb/lined/internal/config"
)

// New builds a logger from cfg. Output goes to cfg.File, or stderr when it is
// empty; stdout is reserved for document output.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Format == "json" {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}

	zc := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          cfg.Format,
		EncoderConfig:     encCfg,
		OutputPaths:       []string{out},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: level > zapcore.DebugLevel,
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("lined"), nil
}
