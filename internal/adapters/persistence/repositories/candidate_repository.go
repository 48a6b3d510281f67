package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/core/domain"
)

// candidateRepository implements CandidateRepository interface
type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create creates a new candidate
func (r *candidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

// GetByID gets a candidate by ID
func (r *candidateRepository) GetByID(ctx context.Context, id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

// Update saves candidate field changes
func (r *candidateRepository) Update(ctx context.Context, candidate *models.Candidate) error {
	return r.db.WithContext(ctx).Save(candidate).Error
}

// Delete removes a candidate and its ballots
func (r *candidateRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Candidate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lists all candidates in insertion order
func (r *candidateRepository) List(ctx context.Context) ([]*models.Candidate, error) {
	var candidates []*models.Candidate
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// ListByVotes lists candidates by vote count descending; ties keep insertion
// order.
func (r *candidateRepository) ListByVotes(ctx context.Context) ([]*models.Candidate, error) {
	var candidates []*models.Candidate
	if err := r.db.WithContext(ctx).
		Order("vote_count DESC, id ASC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}
