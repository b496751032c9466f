package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"inventory-analytics-service/pkg/config"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// InitLogger builds the global logger from configuration
func InitLogger(appConfig *config.Config) {
	once.Do(func() {
		instance = build(appConfig.Log.Level)
	})
}

// GetLogger returns the global logger, building a default one if needed
func GetLogger() *zap.Logger {
	once.Do(func() {
		instance = build("info")
	})
	return instance
}

func build(levelName string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}

	level := zapcore.InfoLevel
	if err := level.Set(levelName); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
