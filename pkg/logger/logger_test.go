package logger_test

import (
	"context"
	"testing"

	"chiscan/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{
			name:        "development environment",
			environment: logger.DevelopmentEnvironment,
		},
		{
			name:        "production environment",
			environment: logger.ProductionEnvironment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	ctxWithLogger := logger.WithLogger(ctx, customLogger)
	require.Equal(t, customLogger, logger.Get(ctxWithLogger), "should return logger from context")
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := logger.WithFields(context.Background(),
		zap.String("component", "scan"),
		zap.Int("points", 100))

	// zap does not expose attached fields; verify the derived logger exists
	// and logging through it does not panic.
	require.NotNil(t, logger.Get(ctx))
	require.NotPanics(t, func() {
		logger.Info(ctx, "sweep finished")
		logger.Debug(ctx, "row evaluated")
		logger.Warn(ctx, "large grid requested")
		logger.Error(ctx, "render failed")
	})
}
