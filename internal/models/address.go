// internal/models/address.go
package models

import "github.com/google/uuid"

type Address struct {
	BaseModel
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Label      string    `json:"label" gorm:"size:50;not null"`
	FullName   string    `json:"full_name" gorm:"size:80;not null"`
	Phone      string    `json:"phone" gorm:"size:20;not null"`
	Street     string    `json:"street" gorm:"size:120;not null"`
	Apartment  string    `json:"apartment,omitempty" gorm:"size:80"`
	City       string    `json:"city" gorm:"size:60;not null"`
	State      string    `json:"state,omitempty" gorm:"size:60"`
	Country    string    `json:"country" gorm:"size:60;not null"`
	PostalCode string    `json:"postal_code,omitempty" gorm:"size:20"`
	Notes      string    `json:"notes,omitempty" gorm:"size:120"`
	IsDefault  bool      `json:"is_default" gorm:"default:false;index"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// Snapshot freezes the address fields embedded into an order, so the order
// stays renderable after the row is edited or removed.
func (a *Address) Snapshot() JSONB {
	return JSONB{
		"id":          a.ID.String(),
		"label":       a.Label,
		"full_name":   a.FullName,
		"phone":       a.Phone,
		"street":      a.Street,
		"apartment":   a.Apartment,
		"city":        a.City,
		"state":       a.State,
		"country":     a.Country,
		"postal_code": a.PostalCode,
		"notes":       a.Notes,
	}
}
