// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/utils"
)

type Product struct {
	SoftDeleteModel
	Title         string    `json:"title" gorm:"size:255;not null"`
	Price         float64   `json:"price" gorm:"type:decimal(10,2);not null;default:0"`
	UnitOfMeasure string    `json:"unit_of_measure" gorm:"size:30;default:'unidad'"`
	Description   string    `json:"description,omitempty" gorm:"type:text"`
	Slug          string    `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Stock         int       `json:"stock" gorm:"default:0"`
	IsFeatured    bool      `json:"is_featured" gorm:"default:false;index"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	CategoryID    uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`

	// Relationships
	User     User           `json:"-" gorm:"foreignKey:UserID"`
	Category Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags     []Tag          `json:"tags,omitempty" gorm:"many2many:product_tags;"`
	Images   []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductImage holds the stored file name; public URLs are resolved at read time.
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	FileName  string    `json:"file_name" gorm:"size:255;not null"`
}

// Slug falls back to the title and is normalized on every write, mirroring
// the unique-slug guarantee the catalog exposes.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = p.Title
	}
	p.Slug = utils.NormalizeSlug(p.Slug)
	return nil
}

// Snapshot freezes the displayable product attributes embedded into an order
// item at purchase time.
func (p *Product) Snapshot() JSONB {
	images := make([]interface{}, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.FileName)
	}

	tags := make([]interface{}, 0, len(p.Tags))
	for i := range p.Tags {
		tags = append(tags, map[string]interface{}(p.Tags[i].Summary()))
	}

	return JSONB{
		"id":          p.ID.String(),
		"title":       p.Title,
		"price":       p.Price,
		"description": p.Description,
		"slug":        p.Slug,
		"stock":       p.Stock,
		"is_featured": p.IsFeatured,
		"images":      images,
		"category":    map[string]interface{}(p.Category.Summary()),
		"tags":        tags,
	}
}
