package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"rootdex/internal/auth"
	apperrors "rootdex/internal/errors"
	"rootdex/internal/model"
	"rootdex/internal/repository"
	"rootdex/internal/service"
)

// ProposalHandler serves the public submission endpoint and the admin
// moderation surface.
type ProposalHandler struct {
	proposals    repository.ProposalRepository
	proposalsSvc service.ProposalService
}

// NewProposalHandler creates a new proposal handler.
func NewProposalHandler(proposals repository.ProposalRepository, proposalsSvc service.ProposalService) *ProposalHandler {
	return &ProposalHandler{proposals: proposals, proposalsSvc: proposalsSvc}
}

// SubmitRequest is the public device-proposal form payload.
// Website is the honeypot field; the form hides it from humans.
type SubmitRequest struct {
	Model        string `json:"model"`
	Brand        string `json:"brand"`
	OS           string `json:"os"`
	Notes        string `json:"notes"`
	Contact      string `json:"contact"`
	Website      string `json:"website"`
	CaptchaToken string `json:"captcha_token"`
}

// Submit godoc
// @Summary Submit a device proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Proposal"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /device-proposals [post]
func (h *ProposalHandler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.proposalsSvc.Submit(c.Request().Context(), service.ProposalSubmission{
		Model:        req.Model,
		Brand:        req.Brand,
		OS:           req.OS,
		Notes:        req.Notes,
		Contact:      req.Contact,
		Website:      req.Website,
		CaptchaToken: req.CaptchaToken,
		RemoteIP:     c.RealIP(),
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if id == 0 {
		// Honeypot path: indistinguishable from success for the bot.
		return c.JSON(http.StatusOK, map[string]interface{}{"ok": true})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true, "id": id})
}

// AdminList returns proposals with a total, filterable by status.
func (h *ProposalHandler) AdminList(c echo.Context) error {
	ctx := c.Request().Context()
	filter := repository.ProposalFilter{
		Status: model.ProposalStatus(c.QueryParam("status")),
	}

	proposals, err := h.proposals.List(ctx, filter, listParams(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	total, err := h.proposals.Count(ctx, filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ListResponse{Items: proposals, Total: total})
}

// AdminGet returns one proposal.
func (h *ProposalHandler) AdminGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	proposal, err := h.proposals.FindByID(c.Request().Context(), id)
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(http.StatusOK, proposal)
}

// AdminApprove transitions a pending proposal to approved, creating the
// device row. Already-moderated proposals come back unchanged.
func (h *ProposalHandler) AdminApprove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	proposal, err := h.proposalsSvc.Approve(c.Request().Context(), id, sessionUsername(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, proposal)
}

// AdminReject transitions a pending proposal to rejected.
func (h *ProposalHandler) AdminReject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	proposal, err := h.proposalsSvc.Reject(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, proposal)
}

// AdminDelete removes a proposal outright.
func (h *ProposalHandler) AdminDelete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	removed, err := h.proposals.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !removed {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Error: "proposal not found", Code: "NOT_FOUND",
		})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// sessionUsername pulls the admin username out of the verified session token.
func sessionUsername(c echo.Context) string {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(*auth.SessionClaims)
	if !ok {
		return ""
	}
	return claims.Username
}
