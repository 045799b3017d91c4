package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"bbip/internal/middleware"
	planHTTP "bbip/internal/plan/delivery/http"
	planRepo "bbip/internal/plan/repository/sqlite"
	planUC "bbip/internal/plan/usecase"
)

// setupPlanDomain initializes the plan domain and registers /api/v1/plans.
func (srv HTTPServer) setupPlanDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := planRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := planUC.New(srv.l, repo, srv.dates, planUC.Config{
		LLM:       srv.llm,
		Calendar:  srv.calendar,
		AITimeout: srv.plan.AITimeout,
		MaxBulk:   srv.plan.MaxBulk,
	})

	// 3. HTTP Handler
	h := planHTTP.New(srv.l, uc)

	// 4. Routes
	planHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Plan domain registered (ai=%t, calendar=%t, timezone=%s)",
		srv.llm != nil, srv.calendar != nil, srv.dates.Location())
	return nil
}
