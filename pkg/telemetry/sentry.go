package telemetry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/d60-Lab/futsalero/pkg/logger"
)

var sentryEnabled bool

// InitSentry configures error reporting; an empty dsn disables it.
func InitSentry(dsn, environment string) (ShutdownFunc, error) {
	if dsn == "" {
		return noopShutdown, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	}); err != nil {
		return nil, err
	}
	sentryEnabled = true
	logger.Info("sentry enabled", zap.String("environment", environment))
	return func(context.Context) error {
		sentry.Flush(2 * time.Second)
		return nil
	}, nil
}

// SentryEnabled reports whether InitSentry installed a client.
func SentryEnabled() bool { return sentryEnabled }

// CaptureError forwards an unexpected error to sentry when enabled.
func CaptureError(err error) {
	if !sentryEnabled || err == nil {
		return
	}
	sentry.CaptureException(err)
}
