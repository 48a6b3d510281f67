package config

import (
	"errors"
	"fmt"
	"log"
	"regexp"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/core/domain"
	"votehub/internal/pkg/password"
)

var seedAadhaarPattern = regexp.MustCompile(`^\d{12}$`)

// SeedAdmin bootstraps the single admin account from the environment when no
// admin exists yet. Idempotent; governed by the same one-admin rule as signup.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if !cfg.Seed.Admin {
		return nil
	}

	if !seedAadhaarPattern.MatchString(cfg.Seed.AdminAadhaar) {
		return errors.New("SEED_ADMIN_AADHAAR must be exactly 12 digits")
	}
	if !password.Validate(cfg.Seed.AdminPassword) {
		return fmt.Errorf("SEED_ADMIN_PASSWORD must be at least %d characters", password.MinLength)
	}

	hash, err := password.Hash(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Model(&models.User{}).
			Where("role = ?", domain.RoleAdmin).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Println("Admin account already present, skipping seed")
			return nil
		}

		admin := &models.User{
			Name:          cfg.Seed.AdminName,
			Age:           0,
			Address:       "seeded",
			AadhaarNumber: cfg.Seed.AdminAadhaar,
			Password:      hash,
			Role:          domain.RoleAdmin,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		log.Printf("Seeded admin account (aadhaar %s)", cfg.Seed.AdminAadhaar)
		return nil
	})
}
