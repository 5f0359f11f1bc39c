package logs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyOperationID is the key for storing the operation ID in context.
	KeyOperationID ContextKey = "operation_id"

	// KeyLogger is the key for storing an operation-scoped logger in context.
	KeyLogger ContextKey = "logger"
)

// GetOperationID extracts the operation ID from context. Empty when none was set.
func GetOperationID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyOperationID).(string); ok {
		return id
	}

	return ""
}

// StartOperation tags ctx with a fresh operation ID and a logger carrying it.
func StartOperation(ctx context.Context, base *slog.Logger, name string) context.Context {
	id := uuid.New().String()
	ctx = context.WithValue(ctx, KeyOperationID, id)

	return WithLogger(ctx, base.With(
		slog.String("operation", name),
		slog.String("operationID", id),
	))
}

// GetLogger extracts the operation-scoped logger from context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the operation-scoped logger from context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
