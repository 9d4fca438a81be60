// internal/models/cart.go
package models

import "github.com/google/uuid"

// Cart is the single open (not checked-out) cart per user. It is created
// lazily on first access and becomes terminal once checkout succeeds.
type Cart struct {
	BaseModel
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	IsCheckedOut bool       `json:"is_checked_out" gorm:"default:false;index"`
	Items        []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

type CartItem struct {
	BaseModel
	CartID    uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// FindItemByProduct returns the line holding productID, or nil.
func (c *Cart) FindItemByProduct(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
