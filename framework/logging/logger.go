// Package logging builds the application's zap logger from configuration.
package logging

import (
	"fmt"

	"github.com/km-arc/go-board/framework/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a structured logger appropriate for the environment.
// Production, or LOG_FORMAT=json, uses the JSON encoder; everything else the
// development console encoder.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}

	var zc zap.Config
	if cfg.IsProduction() || cfg.Log.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger.With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env)), nil
}
