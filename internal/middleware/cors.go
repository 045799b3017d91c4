package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"bbip/internal/model"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Authorization, Content-Type, X-Request-ID"
)

// CORS answers preflight requests and sets the allow headers.
// An empty allow list accepts any origin outside production and none in production.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && m.originAllowed(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", corsAllowMethods)
			c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (m Middleware) originAllowed(origin string) bool {
	if len(m.allowedOrigins) == 0 {
		return m.environment != string(model.EnvironmentProduction)
	}
	return slices.Contains(m.allowedOrigins, origin) || slices.Contains(m.allowedOrigins, "*")
}
