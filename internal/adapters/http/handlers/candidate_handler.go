package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"votehub/internal/core/services"
	"votehub/internal/pkg/response"
)

// CandidateHandler handles candidate registry endpoints
type CandidateHandler struct {
	candidateService *services.CandidateService
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(candidateService *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService}
}

// List returns all candidates
// @Summary List candidates
// @Description Public candidate listing: id, name, party and age only
// @Tags Candidate
// @Produce json
// @Success 200 {object} response.Response
// @Router /candidate [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	candidates, err := h.candidateService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list candidates")
	}
	return response.Success(c, "Candidates", candidates)
}

// Create adds a new candidate (admin only)
// @Summary Create candidate
// @Description Insert a candidate with no backing application
// @Tags Candidate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateCandidateInput true "Candidate fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /candidate [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var input services.CreateCandidateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	candidate, err := h.candidateService.Create(c.Context(), &input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCandidate) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to create candidate")
	}

	return response.Success(c, "Candidate created", candidate)
}

// Update modifies a candidate (admin only)
// @Summary Update candidate
// @Tags Candidate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param candidateId path int true "Candidate ID"
// @Param body body services.UpdateCandidateInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /candidate/{candidateId} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("candidateId")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid candidate ID")
	}

	var input services.UpdateCandidateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	candidate, err := h.candidateService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCandidateNotFound):
			return response.NotFound(c, "Candidate not found")
		case errors.Is(err, services.ErrInvalidCandidate):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to update candidate")
		}
	}

	return response.Success(c, "Candidate updated", candidate)
}

// Delete removes a candidate (admin only)
// @Summary Delete candidate
// @Tags Candidate
// @Produce json
// @Security BearerAuth
// @Param candidateId path int true "Candidate ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /candidate/{candidateId} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("candidateId")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid candidate ID")
	}

	if err := h.candidateService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrCandidateNotFound) {
			return response.NotFound(c, "Candidate not found")
		}
		return response.InternalServerError(c, "Failed to delete candidate")
	}

	return response.Success(c, "Candidate deleted", nil)
}
