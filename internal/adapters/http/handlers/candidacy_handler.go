package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"votehub/internal/adapters/http/middleware"
	"votehub/internal/core/domain"
	"votehub/internal/core/services"
	"votehub/internal/pkg/pagination"
	"votehub/internal/pkg/response"
)

// CandidacyHandler handles candidacy application endpoints
type CandidacyHandler struct {
	candidacyService *services.CandidacyService
}

// NewCandidacyHandler creates a new candidacy handler
func NewCandidacyHandler(candidacyService *services.CandidacyService) *CandidacyHandler {
	return &CandidacyHandler{candidacyService: candidacyService}
}

// ApplyRequest represents candidacy application request body
type ApplyRequest struct {
	Party     string `json:"party"`
	Manifesto string `json:"manifesto"`
}

// DecideRequest represents application decision request body
type DecideRequest struct {
	Action string `json:"action"`
}

// Apply submits a candidacy application for the authenticated user
// @Summary Apply for candidacy
// @Tags Candidacy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ApplyRequest true "Party and manifesto"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /candidate/apply [post]
func (h *CandidacyHandler) Apply(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	err := h.candidacyService.Apply(c.Context(), user.ID, req.Party, req.Manifesto)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminCannotApply):
			return response.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrMissingCandidacy),
			errors.Is(err, services.ErrManifestoTooShort),
			errors.Is(err, services.ErrAlreadyApplied),
			errors.Is(err, services.ErrVotedCannotApply):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			return response.Unauthorized(c, "Unknown user")
		default:
			return response.InternalServerError(c, "Failed to submit application")
		}
	}

	return response.Success(c, "Candidate application submitted successfully", fiber.Map{
		"applicationStatus": domain.ApplicationPending,
	})
}

// ListApplications lists candidacy applications (admin only)
// @Summary List applications
// @Tags Candidacy
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /candidate/applications [get]
func (h *CandidacyHandler) ListApplications(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	applications, total, err := h.candidacyService.ListApplications(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}
	return response.Success(c, "Applications", pagination.NewResponse(applications, params, total))
}

// Decide approves or rejects an application (admin only)
// @Summary Decide application
// @Description Approve promotes the application into a Candidate; reject allows re-application
// @Tags Candidacy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param applicationId path int true "Application (user) ID"
// @Param body body DecideRequest true "approve or reject"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /candidate/applications/{applicationId} [put]
func (h *CandidacyHandler) Decide(c *fiber.Ctx) error {
	actor, ok := middleware.UserFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("applicationId")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid application ID")
	}

	var req DecideRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	candidate, err := h.candidacyService.Decide(c.Context(), uint(id), domain.DecisionAction(req.Action), actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAdmin):
			return response.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrInvalidAction),
			errors.Is(err, services.ErrAlreadyProcessed):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrApplicationNotFound):
			return response.NotFound(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to process application")
		}
	}

	if candidate != nil {
		return response.Success(c, "Candidate application approved successfully", fiber.Map{
			"candidateId": candidate.ID,
		})
	}
	return response.Success(c, "Candidate application rejected", nil)
}
