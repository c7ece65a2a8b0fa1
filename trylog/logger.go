// Package trylog logs try.Try outcomes with zap.
package trylog

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerCtxKey struct{}

func insideContainer() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// NewLogger builds a JSON production logger when GO_ENVIRONMENT is "production" and a colored development
// logger otherwise.
func NewLogger(opts ...zap.Option) *zap.Logger {
	var logCfg zap.Config
	if insideContainer() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := logCfg.Build(opts...)
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}

	if l, ok := ctx.Value(loggerCtxKey{}).(*zap.Logger); ok {
		return l
	}

	return zap.NewNop()
}
