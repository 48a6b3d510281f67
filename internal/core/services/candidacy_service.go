package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/adapters/persistence/repositories"
	"votehub/internal/core/domain"
)

// Candidacy errors
var (
	ErrApplicationNotFound = errors.New("candidate application not found")
	ErrAlreadyApplied      = errors.New("you have already applied as a candidate")
	ErrAlreadyProcessed    = errors.New("application has already been processed")
	ErrAdminCannotApply    = errors.New("administrators cannot apply as candidates")
	ErrVotedCannotApply    = errors.New("users who have voted cannot apply as candidates")
	ErrMissingCandidacy    = errors.New("party name and manifesto are required")
	ErrManifestoTooShort   = fmt.Errorf("manifesto must be at least %d characters", domain.MinManifestoLength)
	ErrInvalidAction       = errors.New("invalid action, use approve or reject")
	ErrNotAdmin            = errors.New("user does not have admin role")
)

// CandidacyService manages the candidacy application lifecycle:
// none -> pending -> {approved, rejected}, with rejected -> pending allowed
// for re-application and approved terminal.
type CandidacyService struct {
	userRepo repositories.UserRepository
}

// NewCandidacyService creates a new candidacy service
func NewCandidacyService(userRepo repositories.UserRepository) *CandidacyService {
	return &CandidacyService{userRepo: userRepo}
}

// Apply submits a candidacy application for the given user
func (s *CandidacyService) Apply(ctx context.Context, userID uint, party, manifesto string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.Role == domain.RoleAdmin {
		return ErrAdminCannotApply
	}
	if party == "" || manifesto == "" {
		return ErrMissingCandidacy
	}
	if len(manifesto) < domain.MinManifestoLength {
		return ErrManifestoTooShort
	}
	if user.ApplicationStatus == domain.ApplicationPending ||
		user.ApplicationStatus == domain.ApplicationApproved {
		return ErrAlreadyApplied
	}
	if user.IsVoted {
		return ErrVotedCannotApply
	}

	err = s.userRepo.SubmitApplication(ctx, userID, party, manifesto, time.Now())
	if errors.Is(err, domain.ErrStaleState) {
		// Lost a race between the checks above and the commit; re-read to
		// report the precondition that actually failed.
		return s.classifyApplyFailure(ctx, userID)
	}
	if err != nil {
		return err
	}

	log.Printf("Candidacy application submitted: user ID %d, party %q", userID, party)
	return nil
}

func (s *CandidacyService) classifyApplyFailure(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	switch {
	case user.IsVoted:
		return ErrVotedCannotApply
	case user.Role == domain.RoleAdmin:
		return ErrAdminCannotApply
	default:
		return ErrAlreadyApplied
	}
}

// Decide approves or rejects a pending application. The actor's admin role is
// re-validated here even though the route guard already enforced it. On
// approve, the status flip and the Candidate promotion commit together.
func (s *CandidacyService) Decide(ctx context.Context, applicationID uint, action domain.DecisionAction, actor *models.User) (*models.Candidate, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return nil, ErrNotAdmin
	}
	if action != domain.ActionApprove && action != domain.ActionReject {
		return nil, ErrInvalidAction
	}

	applicant, err := s.userRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if !applicant.IsApplicant() {
		return nil, ErrApplicationNotFound
	}
	if applicant.ApplicationStatus != domain.ApplicationPending {
		return nil, ErrAlreadyProcessed
	}

	if action == domain.ActionApprove {
		candidate, err := s.userRepo.ApproveApplication(ctx, applicationID, time.Now())
		if err != nil {
			if errors.Is(err, domain.ErrStaleState) {
				return nil, ErrAlreadyProcessed
			}
			return nil, err
		}
		log.Printf("Candidacy application approved: user ID %d -> candidate ID %d", applicationID, candidate.ID)
		return candidate, nil
	}

	if err := s.userRepo.RejectApplication(ctx, applicationID); err != nil {
		if errors.Is(err, domain.ErrStaleState) {
			return nil, ErrAlreadyProcessed
		}
		return nil, err
	}
	log.Printf("Candidacy application rejected: user ID %d", applicationID)
	return nil, nil
}

// ListApplications lists candidacy applications for admin review
func (s *CandidacyService) ListApplications(ctx context.Context, offset, limit int) ([]*models.ApplicationResponse, int64, error) {
	applicants, total, err := s.userRepo.ListApplicants(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	applications := make([]*models.ApplicationResponse, 0, len(applicants))
	for _, applicant := range applicants {
		applications = append(applications, applicant.ToApplication())
	}
	return applications, total, nil
}
