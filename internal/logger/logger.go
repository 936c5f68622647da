package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger with the given log level.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// AuthEvent logs an authentication-relevant event with a stable event type.
// Audit logging must never block request handling, so this only writes to the
// structured log and swallows nothing that could fail.
func AuthEvent(eventType, ip, userAgent string, kv ...any) {
	fields := append([]any{"event", eventType, "ip", ip, "user_agent", userAgent}, kv...)
	Log.Infow("auth_event", fields...)
}
