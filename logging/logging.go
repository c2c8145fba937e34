package logging

import (
	"fmt"

	"github.com/appdotbuilder/futura-blog/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger: console output in development,
// JSON everywhere else.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	var zc zap.Config
	if cfg.IsDevelopment() {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("app", cfg.AppName)), nil
}
