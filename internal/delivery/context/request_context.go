// Package context carries request-scoped values (request ID, logger,
// authenticated identity) across the delivery layer.
package context

import (
	"context"
	"log/slog"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyIdentity is the key for storing the authenticated identity in context.
	KeyIdentity ContextKey = "identity"

	// KeySessionID is the key for storing the session ID backing the identity.
	KeySessionID ContextKey = "session_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
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

// SetIdentity stores the authenticated identity and its session ID in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity, sessionID string) {
	c.Set(string(KeyIdentity), identity)
	c.Set(string(KeySessionID), sessionID)
}

// GetIdentity extracts the authenticated identity from echo.Context.
// Returns nil for anonymous requests.
func GetIdentity(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity); ok {
		return identity
	}

	return nil
}

// GetSessionID extracts the session ID backing the current identity.
// Returns empty string for anonymous requests.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(string(KeySessionID)).(string); ok {
		return id
	}

	return ""
}
