package middleware

import (
	"context"
	"log/slog"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private key type used for values stored in request
// contexts. Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	userIDKey      = contextKey("userID")
	tenantScopeKey = contextKey("tenantScope")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard
// context. It returns the default logger if none is present.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		if userIDVal := c.Request.Context().Value(userIDKey); userIDVal != nil {
			if userID, ok := userIDVal.(string); ok {
				return userID, true
			}
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetTenantScopeFromContext retrieves the caller's tenant scope from the Gin
// context. It returns the scope and a boolean indicating if it was found.
func GetTenantScopeFromContext(c *gin.Context) (domain.TenantScope, bool) {
	scopeVal := c.Request.Context().Value(tenantScopeKey)
	if scopeVal == nil {
		return domain.TenantScope{}, false
	}
	scope, ok := scopeVal.(domain.TenantScope)
	return scope, ok
}
