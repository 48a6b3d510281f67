package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/core/domain"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new voter user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEntry
	}
	return err
}

// CreateAdmin creates the admin user under the one-admin invariant. The count
// and the insert run in one transaction with the admin rows locked, so two
// concurrent admin signups cannot both pass the check.
func (r *userRepository) CreateAdmin(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Model(&models.User{}).
			Where("role = ?", domain.RoleAdmin).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAdminExists
		}

		user.Role = domain.RoleAdmin
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateEntry
			}
			return err
		}
		return nil
	})
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByAadhaar gets a user by aadhaar number
func (r *userRepository) GetByAadhaar(ctx context.Context, aadhaar string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("aadhaar_number = ?", aadhaar).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByAadhaar checks if a user with the aadhaar number exists
func (r *userRepository) ExistsByAadhaar(ctx context.Context, aadhaar string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("aadhaar_number = ?", aadhaar).Count(&count).Error
	return count > 0, err
}

// AdminExists checks if an admin user exists
func (r *userRepository) AdminExists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error
	return count > 0, err
}

// UpdatePassword updates a user's password hash
func (r *userRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SubmitApplication moves a voter into the pending candidacy state. The WHERE
// clause re-checks every precondition at commit time: still a voter, not
// voted, and no live (pending or approved) application.
func (r *userRepository) SubmitApplication(ctx context.Context, userID uint, party, manifesto string, appliedAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND role = ? AND is_voted = ? AND application_status NOT IN ?",
			userID, domain.RoleVoter, false,
			[]domain.ApplicationStatus{domain.ApplicationPending, domain.ApplicationApproved}).
		Updates(map[string]interface{}{
			"application_status": domain.ApplicationPending,
			"party":              party,
			"manifesto":          manifesto,
			"applied_at":         appliedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleState
	}
	return nil
}

// ApproveApplication promotes a pending application into a Candidate row. The
// status flip and the candidate insert share one transaction; either both
// persist or neither does.
func (r *userRepository) ApproveApplication(ctx context.Context, userID uint, approvedAt time.Time) (*models.Candidate, error) {
	var candidate *models.Candidate

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		res := tx.Model(&models.User{}).
			Where("id = ? AND application_status = ?", userID, domain.ApplicationPending).
			Updates(map[string]interface{}{
				"application_status": domain.ApplicationApproved,
				"approved_at":        approvedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrStaleState
		}

		candidate = &models.Candidate{
			Name:                  user.Name,
			Party:                 user.Party,
			Age:                   user.Age,
			Manifesto:             user.Manifesto,
			ApplicantUserID:       &user.ID,
			IsFromUserApplication: true,
		}
		return tx.Create(candidate).Error
	})
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

// RejectApplication moves a pending application to rejected
func (r *userRepository) RejectApplication(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND application_status = ?", userID, domain.ApplicationPending).
		Update("application_status", domain.ApplicationRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleState
	}
	return nil
}

// ListApplicants lists users who ever applied for candidacy, with pagination
func (r *userRepository) ListApplicants(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{}).
		Where("application_status <> ?", domain.ApplicationNone)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("applied_at ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// TurnoutCounts returns registered voter and cast-ballot counts
func (r *userRepository) TurnoutCounts(ctx context.Context) (int64, int64, error) {
	var registered, voted int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", domain.RoleVoter).Count(&registered).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ? AND is_voted = ?", domain.RoleVoter, true).Count(&voted).Error; err != nil {
		return 0, 0, err
	}
	return registered, voted, nil
}
