package http

import (
	"github.com/gin-gonic/gin"

	"bbip/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires a token; the parsing routes are also rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plans := rg.Group("/plans", mw.Auth())
	{
		plans.GET("", h.List)
		plans.POST("", h.Create)
		plans.PUT("/:id", h.Update)
		plans.DELETE("/:id", h.Delete)
		plans.POST("/bulk", h.CreateBulk)
		plans.POST("/parse", mw.RateLimit(), h.ParseAI)
		plans.POST("/parse/local", mw.RateLimit(), h.ParseLocal)
		plans.POST("/complete", mw.RateLimit(), h.Complete)
		plans.GET("/stats", h.Stats)
	}
}
