package http

import (
	"github.com/gin-gonic/gin"

	"bbip/pkg/response"
)

// Register godoc
// @Summary     Register
// @Description Creates an account and returns an access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     200  {object} authResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - email already registered"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAuthResp(output))
}

// Login godoc
// @Summary     Login
// @Description Exchanges email and password for an access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} authResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Invalid credentials"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAuthResp(output))
}

// Me godoc
// @Summary     Current user
// @Description Returns the profile of the authenticated user.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(output.User))
}

// UpdateProfile godoc
// @Summary     Update profile
// @Description Changes the name and/or emoji of the authenticated user. Omitted fields are kept.
// @Tags        User
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateProfileReq true "Fields to update"
// @Success     200 {object} meResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/user [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateProfileReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(output.User))
}
