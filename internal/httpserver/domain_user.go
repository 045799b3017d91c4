package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"bbip/internal/middleware"
	userHTTP "bbip/internal/user/delivery/http"
	userRepo "bbip/internal/user/repository/sqlite"
	userUC "bbip/internal/user/usecase"
)

// setupUserDomain initializes the user domain and registers /api/v1/auth and /api/v1/user.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := userRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := userUC.New(repo, srv.encrypter, srv.jwtManager, srv.l)

	// 3. HTTP Handler
	h := userHTTP.New(srv.l, uc)

	// 4. Routes
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
