package http

import (
	"github.com/gin-gonic/gin"

	"bbip/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Register and login are rate limited per client; everything else requires a token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", mw.RateLimit(), h.Register)
		auth.POST("/login", mw.RateLimit(), h.Login)
		auth.GET("/me", mw.Auth(), h.Me)
	}

	rg.PUT("/user", mw.Auth(), h.UpdateProfile)
}
