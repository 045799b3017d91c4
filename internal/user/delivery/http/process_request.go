package http

import (
	"github.com/gin-gonic/gin"

	"bbip/internal/model"
	"bbip/pkg/scope"
)

// processRegisterReq binds the register request body.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLoginReq binds the login request body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateProfileReq binds the profile update body and resolves the caller.
func (h *handler) processUpdateProfileReq(c *gin.Context) (model.Scope, updateProfileReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, updateProfileReq{}, err
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processScope returns the scope set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok || sc.UserID == "" {
		return model.Scope{}, errScopeMissing
	}
	return sc, nil
}
