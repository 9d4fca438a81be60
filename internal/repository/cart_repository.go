// internal/repository/cart_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/models"
)

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetOrCreateOpen(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := r.findOpen(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return r.createOpen(ctx, userID)
}

func (r *cartRepository) findOpen(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		Preload("Items.Product.Category").
		Preload("Items.Product.Tags").
		Preload("Items.Product.Images").
		First(&cart, "user_id = ? AND is_checked_out = ?", userID, false).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// createOpen inserts a fresh cart. When two first accesses race, the unique
// index on open carts rejects the second insert; the loser picks up the cart
// the winner created instead of surfacing the conflict.
func (r *cartRepository) createOpen(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart := models.Cart{UserID: userID}
	if createErr := r.db.WithContext(ctx).Create(&cart).Error; createErr != nil {
		if existing, err := r.findOpen(ctx, userID); err == nil {
			return existing, nil
		}
		return nil, createErr
	}
	cart.Items = []models.CartItem{}
	return &cart, nil
}

func (r *cartRepository) SaveItem(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Omit("Product").Save(item).Error
}

func (r *cartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{})
	return result.RowsAffected > 0, result.Error
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

func (r *cartRepository) Touch(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error
}
