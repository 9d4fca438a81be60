// internal/models/tag.go
package models

type Tag struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`

	Products []Product `json:"products,omitempty" gorm:"many2many:product_tags;"`
}

func (t *Tag) Summary() JSONB {
	return JSONB{
		"id":   t.ID.String(),
		"name": t.Name,
	}
}
