package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bbip/pkg/response"
	"bbip/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the Bearer token and stores the caller's scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
