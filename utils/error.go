package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware to catch panics and return structured errors.
// The body keeps the {ok:false, error} shape clients already parse.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, gin.H{
					"ok":    false,
					"error": "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.Int("status", status), zap.String("path", c.FullPath()))
	c.JSON(status, gin.H{"ok": false, "error": message})
}

// JSONFieldErrors sends a validation failure keyed by form field.
func JSONFieldErrors(c *gin.Context, fields FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": fields})
}
