// internal/repository/contact_repository.go
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/models"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Contact{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&contacts).Error
	return contacts, total, err
}
