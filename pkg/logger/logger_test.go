package logger_test

import (
	"context"
	"testing"

	"bookstore/pkg/logger"

	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	for _, environment := range []string{
		logger.DevelopmentEnvironment,
		logger.ProductionEnvironment,
	} {
		t.Run(environment, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(environment)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet_FallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	l := logger.Get(context.Background())
	require.NotNil(t, l, "empty context should yield the default logger")
}

func TestWithLogger_RoundTrip(t *testing.T) {
	requestLogger, _ := zap.NewDevelopment()

	ctx := logger.WithLogger(context.Background(), requestLogger)
	require.Equal(t, requestLogger, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	// zap does not expose attached fields, so only verify a logger survives
	ctx := logger.WithFields(context.Background(),
		zap.String("memberId", "M001"),
		zap.String("bookCode", "JK-45"),
	)
	require.NotNil(t, logger.Get(ctx))
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()), "development logger should be at debug level")

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, _ := cfg.Build()

	ctx := logger.WithLogger(context.Background(), infoLogger)
	require.False(t, logger.IsDebug(ctx))
}

func TestLevelHelpers(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	field := zap.String("bookCode", "JK-45")

	for name, fn := range map[string]func(context.Context, string, ...zapcore.Field){
		"debug": logger.Debug,
		"info":  logger.Info,
		"warn":  logger.Warn,
		"error": logger.Error,
	} {
		require.NotPanics(t, func() {
			fn(ctx, "loan "+name+" message", field)
		})
	}
}
