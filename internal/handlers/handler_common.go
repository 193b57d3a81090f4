package handlers

import (
	"net/http"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/AhmedMohamed005/erp-sys/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// resolveCaller extracts the authenticated user and tenant scope from the
// request. Exempt callers may retarget another organization through the
// X-Organization-ID header or org_id query parameter. It writes the error
// response and returns ok=false when the caller cannot be resolved.
func resolveCaller(c *gin.Context) (domain.TenantScope, string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.TenantScope{}, "", false
	}

	scope, ok := middleware.GetTenantScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.TenantScope{}, "", false
	}

	// Exempt callers name a target organization explicitly; for everyone
	// else ForOrganization keeps the caller's own scope.
	targetOrg := c.GetHeader("X-Organization-ID")
	if targetOrg == "" {
		targetOrg = c.Query("org_id")
	}
	if targetOrg != "" {
		scope = scope.ForOrganization(targetOrg)
	}

	return scope, userID, true
}

// parseDateParam parses an optional YYYY-MM-DD query parameter. It writes a
// 400 response and returns ok=false on malformed input.
func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &parsed, true
}
