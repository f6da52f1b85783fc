package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsyorkd/cert-agent/internal/logger"
)

// Recovery creates a gin middleware for panic recovery
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.RecoveryWithWriter(gin.DefaultErrorWriter, func(c *gin.Context, recovered interface{}) {
		log.WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
			"panic":  recovered,
		}).Error("Panic recovered in HTTP handler")

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
		})
	})
}
