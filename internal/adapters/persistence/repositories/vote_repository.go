package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/core/domain"
)

// voteRepository implements VoteRepository interface
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// RecordBallot casts a vote atomically. The voter flag flip is a conditional
// write re-checking role, is_voted and the approved-candidate bar at commit
// time; the ballot insert and counter increment join it in one transaction so
// a crash cannot leave a ballot without the flag or vice versa. The unique
// index on votes.user_id is the last line of defense against a double ballot.
func (r *voteRepository) RecordBallot(ctx context.Context, userID, candidateID uint, votedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND role = ? AND is_voted = ? AND application_status <> ?",
				userID, domain.RoleVoter, false, domain.ApplicationApproved).
			Update("is_voted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrStaleState
		}

		vote := &models.Vote{
			CandidateID: candidateID,
			UserID:      userID,
			VotedAt:     votedAt,
		}
		if err := tx.Create(vote).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrStaleState
			}
			return err
		}

		res = tx.Model(&models.Candidate{}).
			Where("id = ?", candidateID).
			UpdateColumn("vote_count", gorm.Expr("vote_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
