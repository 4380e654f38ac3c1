package middleware

import (
	"net/http"

	"shiftflow/config"
	"shiftflow/models"
	"shiftflow/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by SessionAuthMiddleware.
const (
	principalKey = "principal"
	sessionIDKey = "sessionID"
)

// SessionAuthMiddleware resolves the session cookie into a Principal. The
// cookie carries a signed token whose subject is the server-side session
// id; the principal itself lives in Redis and is re-read on every request
// so role changes and logouts take effect immediately.
func SessionAuthMiddleware(sessions *utils.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(config.AppConfig.SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		sessionID, err := utils.SessionIDFromToken(token)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		principal, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Set(principalKey, *principal)
		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal set by
// SessionAuthMiddleware.
func GetPrincipal(c *gin.Context) (utils.Principal, bool) {
	val, exists := c.Get(principalKey)
	if !exists {
		return utils.Principal{}, false
	}
	principal, ok := val.(utils.Principal)
	return principal, ok
}

// GetSessionID returns the session id set by SessionAuthMiddleware.
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// ManagerRequired rejects callers that are not managers.
func ManagerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || principal.Role != models.RoleManager {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Manager account required"})
			return
		}
		c.Next()
	}
}

// EmployeeRequired rejects callers that are not employees.
func EmployeeRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || principal.Role != models.RoleEmployee {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Employee account required"})
			return
		}
		c.Next()
	}
}
