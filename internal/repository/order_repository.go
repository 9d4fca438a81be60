// internal/repository/order_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/models"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("order_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (r *orderRepository) CreateFromCart(ctx context.Context, order *models.Order, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The guard on is_checked_out makes concurrent checkouts of the same
		// cart race safely: the loser matches zero rows and aborts here.
		result := tx.Model(&models.Cart{}).
			Where("id = ? AND is_checked_out = ?", cartID, false).
			Update("is_checked_out", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Omit("User", "ShippingAddress", "BillingProfile", "Items.Product").
			Create(order).Error
	})
}

func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		Preload("Items.Product.Tags").
		Preload("Items.Product.Images").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) FindOwned(ctx context.Context, userID, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		Preload("Items.Product.Tags").
		Preload("Items.Product.Images").
		Preload("ShippingAddress").
		Preload("BillingProfile").
		First(&order, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
