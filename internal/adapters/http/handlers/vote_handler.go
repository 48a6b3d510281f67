package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"votehub/internal/adapters/http/middleware"
	"votehub/internal/core/services"
	"votehub/internal/pkg/response"
)

// VoteHandler handles vote casting and tally endpoints
type VoteHandler struct {
	votingService *services.VotingService
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(votingService *services.VotingService) *VoteHandler {
	return &VoteHandler{votingService: votingService}
}

// Cast records a ballot for a candidate
// @Summary Cast a vote
// @Description Record the authenticated voter's single ballot
// @Tags Vote
// @Produce json
// @Security BearerAuth
// @Param candidateId path int true "Candidate ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /candidate/vote/{candidateId} [post]
func (h *VoteHandler) Cast(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("candidateId")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid candidate ID")
	}

	err = h.votingService.CastVote(c.Context(), user.ID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCandidateNotFound):
			return response.NotFound(c, "Candidate not found")
		case errors.Is(err, services.ErrAdminCannotVote),
			errors.Is(err, services.ErrCandidateCannotVote):
			return response.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrAlreadyVoted):
			return response.BadRequest(c, "You have already voted")
		case errors.Is(err, services.ErrUserNotFound):
			return response.Unauthorized(c, "Unknown user")
		default:
			return response.InternalServerError(c, "Failed to record vote")
		}
	}

	return response.Success(c, "Vote recorded successfully", nil)
}

// Count returns the public vote tally
// @Summary Vote tally
// @Description Candidates as (party, voteCount) ordered by votes descending
// @Tags Vote
// @Produce json
// @Success 200 {object} response.Response
// @Router /candidate/vote/count [get]
func (h *VoteHandler) Count(c *fiber.Ctx) error {
	tally, err := h.votingService.Tally(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute tally")
	}
	return response.Success(c, "Vote tally", tally)
}
