// Package logger builds the zap logger used across the service and tracks
// simple in-process metrics about upstream fetches.
//
// Example usage:
//
//	log, err := logger.NewLogger(&cfg.Log)
//	log.Info("fetched page", zap.String("url", u), zap.Duration("took", d))
//
//	metrics.IncrCounter("upstream.fetch.ok")
//	metrics.RecordTiming("upstream.fetch", d)
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pfrederiksen/dtu-calendar/internal/config"
)

// NewLogger builds a zap logger from cfg. Format "console" selects the
// human-readable development encoder; anything else logs JSON.
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	switch cfg.Format {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return logger, nil
}
