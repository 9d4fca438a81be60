// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text;not null"`
	IsFeatured  bool   `json:"is_featured" gorm:"default:false"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

// Summary is the shape embedded into product snapshots.
func (c *Category) Summary() JSONB {
	return JSONB{
		"id":   c.ID.String(),
		"name": c.Name,
	}
}
