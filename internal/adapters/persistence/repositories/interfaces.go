package repositories

import (
	"context"
	"time"

	"votehub/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface. The Submit/Approve/Reject
// methods are conditional writes: they re-check the candidacy preconditions in
// the WHERE clause and return domain.ErrStaleState when the row has moved on.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	CreateAdmin(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByAadhaar(ctx context.Context, aadhaar string) (*models.User, error)
	ExistsByAadhaar(ctx context.Context, aadhaar string) (bool, error)
	AdminExists(ctx context.Context) (bool, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error

	SubmitApplication(ctx context.Context, userID uint, party, manifesto string, appliedAt time.Time) error
	ApproveApplication(ctx context.Context, userID uint, approvedAt time.Time) (*models.Candidate, error)
	RejectApplication(ctx context.Context, userID uint) error
	ListApplicants(ctx context.Context, offset, limit int) ([]*models.User, int64, error)

	TurnoutCounts(ctx context.Context) (registered int64, voted int64, err error)
}

// CandidateRepository defines candidate repository interface
type CandidateRepository interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	GetByID(ctx context.Context, id uint) (*models.Candidate, error)
	Update(ctx context.Context, candidate *models.Candidate) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Candidate, error)
	ListByVotes(ctx context.Context) ([]*models.Candidate, error)
}

// VoteRepository records ballots. RecordBallot commits the voter flag, the
// ballot row and the candidate counter in one transaction.
type VoteRepository interface {
	RecordBallot(ctx context.Context, userID, candidateID uint, votedAt time.Time) error
}
