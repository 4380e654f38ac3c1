package middleware

import (
	"crypto/subtle"
	"net/http"

	"shiftflow/config"
	"shiftflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// csrfCookieMaxAge keeps the token stable across visits (52 weeks).
const csrfCookieMaxAge = 31449600

// CSRFMiddleware implements double-submit protection: mutating requests
// must echo the csrf cookie back in the X-CSRFToken header or in a
// csrfmiddlewaretoken form field. Safe methods pass through and get a
// cookie issued when they do not have one yet.
func CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			ensureCSRFCookie(c)
			c.Next()
			return
		}

		cookie, err := c.Cookie(config.AppConfig.CSRFCookie)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "CSRF cookie not set."})
			return
		}

		token := c.GetHeader("X-CSRFToken")
		if token == "" {
			token = c.PostForm("csrfmiddlewaretoken")
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(cookie)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "CSRF token missing or incorrect."})
			return
		}

		c.Next()
	}
}

// ensureCSRFCookie issues a csrf cookie when the request carries none.
// The cookie is intentionally readable by scripts: clients echo its value
// back on mutating requests.
func ensureCSRFCookie(c *gin.Context) {
	if cookie, err := c.Cookie(config.AppConfig.CSRFCookie); err == nil && cookie != "" {
		return
	}
	token, err := utils.RandomToken(utils.CSRFTokenLength)
	if err != nil {
		utils.GetLogger().Error("Failed to generate CSRF token", zap.Error(err))
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.AppConfig.CSRFCookie, token, csrfCookieMaxAge, "/", "", config.AppConfig.CookieSecure, false)
}
