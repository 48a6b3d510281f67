package services

import (
	"context"
	"errors"
	"log"
	"time"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/adapters/persistence/repositories"
	"votehub/internal/core/domain"
)

// Voting errors
var (
	ErrAdminCannotVote     = errors.New("admin is not allowed to vote")
	ErrAlreadyVoted        = errors.New("you have already voted")
	ErrCandidateCannotVote = errors.New("candidates cannot vote in the election")
)

// VotingService enforces the one-vote invariant and records ballots
type VotingService struct {
	userRepo      repositories.UserRepository
	candidateRepo repositories.CandidateRepository
	voteRepo      repositories.VoteRepository
}

// NewVotingService creates a new voting service
func NewVotingService(
	userRepo repositories.UserRepository,
	candidateRepo repositories.CandidateRepository,
	voteRepo repositories.VoteRepository,
) *VotingService {
	return &VotingService{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
	}
}

// CastVote records a ballot for the candidate on behalf of the user. The
// preconditions are checked here in order, then re-checked by the conditional
// commit in the repository so concurrent casts cannot slip through.
func (s *VotingService) CastVote(ctx context.Context, userID, candidateID uint) error {
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrCandidateNotFound
		}
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.Role == domain.RoleAdmin {
		return ErrAdminCannotVote
	}
	if user.IsVoted {
		return ErrAlreadyVoted
	}
	if user.ApplicationStatus == domain.ApplicationApproved {
		return ErrCandidateCannotVote
	}

	err = s.voteRepo.RecordBallot(ctx, userID, candidateID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStaleState):
			return s.classifyCastFailure(ctx, userID)
		case errors.Is(err, domain.ErrNotFound):
			return ErrCandidateNotFound
		default:
			return err
		}
	}

	log.Printf("Vote recorded: user ID %d -> candidate ID %d", userID, candidateID)
	return nil
}

func (s *VotingService) classifyCastFailure(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	switch {
	case user.Role == domain.RoleAdmin:
		return ErrAdminCannotVote
	case user.ApplicationStatus == domain.ApplicationApproved:
		return ErrCandidateCannotVote
	default:
		return ErrAlreadyVoted
	}
}

// Tally returns all candidates as (party, voteCount) pairs ordered by vote
// count descending with insertion-order tie-break. Read-only.
func (s *VotingService) Tally(ctx context.Context) ([]*models.PartyTally, error) {
	candidates, err := s.candidateRepo.ListByVotes(ctx)
	if err != nil {
		return nil, err
	}

	tally := make([]*models.PartyTally, 0, len(candidates))
	for _, candidate := range candidates {
		tally = append(tally, &models.PartyTally{
			Party:     candidate.Party,
			VoteCount: candidate.VoteCount,
		})
	}
	return tally, nil
}
