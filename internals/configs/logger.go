package configs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger membangun logger proses. APP_DEBUG=true menurunkan level ke debug.
func NewLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if GetEnvBool("APP_DEBUG", false) {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
