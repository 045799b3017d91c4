package http

import (
	"github.com/gin-gonic/gin"

	"bbip/internal/plan"
	"bbip/pkg/response"
)

// List godoc
// @Summary     List plans
// @Description Lists the caller's plans for one date, an inclusive range, or all of them.
// @Description date, start and end also accept relative days (today, 내일), "in N days" and "next <weekday>".
// @Tags        Plans
// @Produce     json
// @Security    BearerAuth
// @Param       date  query string false "YYYY-MM-DD or a relative expression"
// @Param       start query string false "Range start, YYYY-MM-DD or a relative expression"
// @Param       end   query string false "Range end, YYYY-MM-DD or a relative expression"
// @Success     200 {object} planListResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "plan.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPlanListResp(output.Plans))
}

// Create godoc
// @Summary     Create plan
// @Description Stores one plan. time is optional (HH:MM).
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Plan"
// @Success     200 {object} planItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "plan.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPlanItemResp(output.Plan))
}

// Update godoc
// @Summary     Update plan
// @Description Changes the given fields of a plan. A null time clears it.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Plan ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} planItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput(id))
	if err != nil {
		h.l.Warnf(ctx, "plan.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPlanItemResp(output.Plan))
}

// Delete godoc
// @Summary     Delete plan
// @Tags        Plans
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "plan.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateBulk godoc
// @Summary     Create plans in bulk
// @Description Stores up to the configured limit of plans in one transaction.
// @Description Items with a blank or overlong title are skipped; a malformed time is dropped; a missing date means today.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createBulkReq true "Plans"
// @Success     200 {object} createBulkResp
// @Failure     400 {object} response.Resp "Bad Request - empty or too many plans"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/bulk [POST]
func (h *handler) CreateBulk(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateBulkReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateBulk(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "plan.delivery.http.CreateBulk: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateBulkResp(output))
}

// ParseAI godoc
// @Summary     Parse text with AI
// @Description Extracts plans from free text with the configured language model. Nothing is stored.
// @Tags        Parsing
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body parseReq true "Free text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "AI unavailable or failed"
// @Router      /api/v1/plans/parse [POST]
func (h *handler) ParseAI(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseAI(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "plan.delivery.http.ParseAI: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// ParseLocal godoc
// @Summary     Parse text locally
// @Description Extracts plans from Korean free text with the rule-based parser. Nothing is stored.
// @Tags        Parsing
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body parseReq true "Free text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/plans/parse/local [POST]
func (h *handler) ParseLocal(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseLocal(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "plan.delivery.http.ParseLocal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Complete godoc
// @Summary     Complete plan from text
// @Description Parses free text (AI first when available, rule-based otherwise) and stores the result.
// @Description source reports which parser was used: local, ai or raw.
// @Tags        Parsing
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body parseReq true "Free text"
// @Success     200 {object} completeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Complete(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "plan.delivery.http.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Stats godoc
// @Summary     Plan statistics
// @Description Yearly and monthly completion, the last seven days' rate and the current streak.
// @Tags        Plans
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Year, defaults to the current one"
// @Success     200 {object} statsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processStatsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Stats(ctx, sc, plan.StatsInput{Year: req.Year})
	if err != nil {
		h.l.Errorf(ctx, "plan.delivery.http.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}
