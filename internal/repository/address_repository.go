// internal/repository/address_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/models"
)

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error
	return addresses, err
}

func (r *addressRepository) FindOwned(ctx context.Context, userID, id uuid.UUID) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).First(&address, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) Create(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := clearDefaultAddresses(tx, address.UserID, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
}

func (r *addressRepository) Update(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := clearDefaultAddresses(tx, address.UserID, address.ID); err != nil {
				return err
			}
		}
		// Save with Select so a false is_default is persisted too.
		return tx.Model(address).Select("*").Omit("id", "user_id", "created_at").Updates(address).Error
	})
}

func (r *addressRepository) Delete(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Orders keep rendering from their shipping snapshot once the live
		// reference is gone.
		if err := tx.Model(&models.Order{}).
			Where("shipping_address_id = ?", address.ID).
			Update("shipping_address_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(address).Error
	})
}

func clearDefaultAddresses(tx *gorm.DB, userID, exceptID uuid.UUID) error {
	query := tx.Model(&models.Address{}).Where("user_id = ? AND is_default = ?", userID, true)
	if exceptID != uuid.Nil {
		query = query.Where("id <> ?", exceptID)
	}
	return query.Update("is_default", false).Error
}
