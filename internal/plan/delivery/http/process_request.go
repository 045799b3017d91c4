package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bbip/internal/model"
	"bbip/pkg/scope"
)

// processScope returns the scope set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok || sc.UserID == "" {
		return model.Scope{}, errScopeMissing
	}
	return sc, nil
}

// processCreateReq resolves the caller and binds the create body.
func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, createReq{}, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processListReq resolves the caller and binds the query filters.
func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, listReq{}, err
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processUpdateReq resolves the caller, the path id and binds the update body.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, string, updateReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, "", updateReq{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, "", req, err
	}
	return sc, strings.TrimSpace(c.Param("id")), req, nil
}

// processCreateBulkReq resolves the caller and binds the bulk body.
func (h *handler) processCreateBulkReq(c *gin.Context) (model.Scope, createBulkReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, createBulkReq{}, err
	}

	var req createBulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processParseReq resolves the caller and binds a free-text body.
func (h *handler) processParseReq(c *gin.Context) (model.Scope, parseReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, parseReq{}, err
	}

	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processStatsReq resolves the caller and binds the year query.
func (h *handler) processStatsReq(c *gin.Context) (model.Scope, statsReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, statsReq{}, err
	}

	var req statsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}
