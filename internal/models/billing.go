// internal/models/billing.go
package models

import "github.com/google/uuid"

type BillingProfile struct {
	BaseModel
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	LegalName    string    `json:"legal_name" gorm:"size:120;not null"`
	TaxID        string    `json:"tax_id" gorm:"size:30;not null"`
	Email        string    `json:"email" gorm:"size:255;not null"`
	Phone        string    `json:"phone,omitempty" gorm:"size:20"`
	AddressLine1 string    `json:"address_line1" gorm:"size:120;not null"`
	AddressLine2 string    `json:"address_line2,omitempty" gorm:"size:80"`
	City         string    `json:"city" gorm:"size:60;not null"`
	State        string    `json:"state,omitempty" gorm:"size:60"`
	Country      string    `json:"country" gorm:"size:60;not null"`
	PostalCode   string    `json:"postal_code,omitempty" gorm:"size:20"`
	IsDefault    bool      `json:"is_default" gorm:"default:false;index"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (b *BillingProfile) Snapshot() JSONB {
	return JSONB{
		"id":            b.ID.String(),
		"legal_name":    b.LegalName,
		"tax_id":        b.TaxID,
		"email":         b.Email,
		"phone":         b.Phone,
		"address_line1": b.AddressLine1,
		"address_line2": b.AddressLine2,
		"city":          b.City,
		"state":         b.State,
		"country":       b.Country,
		"postal_code":   b.PostalCode,
	}
}
