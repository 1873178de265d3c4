// Package context carries request-scoped values between the HTTP layer and
// the services: the request ID, the request logger and the authenticated actor.
package context

import (
	"context"
	"log/slog"
	"time"

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

	// KeyUserID is the echo key for the authenticated profile ID.
	KeyUserID ContextKey = "user_id"

	// KeyTokenID is the echo key for the jti of the presented access token.
	KeyTokenID ContextKey = "token_id"

	// KeyTokenExpiresAt is the echo key for the expiry of the presented access token.
	KeyTokenExpiresAt ContextKey = "token_expires_at"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context, or "" when the
// request-id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return ""
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
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

// SetAccessToken records the authenticated actor and the token they presented.
func SetAccessToken(c echo.Context, userID uuid.UUID, tokenID string, expiresAt time.Time) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyTokenID), tokenID)
	c.Set(string(KeyTokenExpiresAt), expiresAt)
}

// GetUserID returns the authenticated profile ID, or uuid.Nil for anonymous requests.
func GetUserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(string(KeyUserID)).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}

// GetAccessToken returns the jti and expiry of the presented token.
func GetAccessToken(c echo.Context) (string, time.Time) {
	tokenID, _ := c.Get(string(KeyTokenID)).(string)
	expiresAt, _ := c.Get(string(KeyTokenExpiresAt)).(time.Time)

	return tokenID, expiresAt
}
