// internal/repository/billing_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/models"
)

type billingProfileRepository struct {
	db *gorm.DB
}

func NewBillingProfileRepository(db *gorm.DB) BillingProfileRepository {
	return &billingProfileRepository{db: db}
}

func (r *billingProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.BillingProfile, error) {
	var profiles []models.BillingProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&profiles).Error
	return profiles, err
}

func (r *billingProfileRepository) FindOwned(ctx context.Context, userID, id uuid.UUID) (*models.BillingProfile, error) {
	var profile models.BillingProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *billingProfileRepository) FindDefault(ctx context.Context, userID uuid.UUID) (*models.BillingProfile, error) {
	var profile models.BillingProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ? AND is_default = ?", userID, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *billingProfileRepository) Create(ctx context.Context, profile *models.BillingProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if profile.IsDefault {
			if err := clearDefaultBillingProfiles(tx, profile.UserID, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Create(profile).Error
	})
}

func (r *billingProfileRepository) Update(ctx context.Context, profile *models.BillingProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if profile.IsDefault {
			if err := clearDefaultBillingProfiles(tx, profile.UserID, profile.ID); err != nil {
				return err
			}
		}
		return tx.Model(profile).Select("*").Omit("id", "user_id", "created_at").Updates(profile).Error
	})
}

func (r *billingProfileRepository) Delete(ctx context.Context, profile *models.BillingProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("billing_profile_id = ?", profile.ID).
			Update("billing_profile_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(profile).Error
	})
}

func clearDefaultBillingProfiles(tx *gorm.DB, userID, exceptID uuid.UUID) error {
	query := tx.Model(&models.BillingProfile{}).Where("user_id = ? AND is_default = ?", userID, true)
	if exceptID != uuid.Nil {
		query = query.Where("id <> ?", exceptID)
	}
	return query.Update("is_default", false).Error
}
