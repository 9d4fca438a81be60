// internal/models/order.go
package models

import "github.com/google/uuid"

// Order is immutable once created. Shipping and billing keep both a live
// foreign key and a frozen snapshot; the snapshot is authoritative for
// display when the referenced row is gone.
type Order struct {
	BaseModel
	OrderNumber string      `json:"order_number" gorm:"size:20;not null;uniqueIndex"`
	UserID      uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Total       float64     `json:"total" gorm:"type:decimal(12,2);not null;default:0"`
	Notes       string      `json:"notes,omitempty" gorm:"type:text"`

	ShippingAddressID *uuid.UUID `json:"shipping_address_id,omitempty" gorm:"type:uuid"`
	BillingProfileID  *uuid.UUID `json:"billing_profile_id,omitempty" gorm:"type:uuid"`
	ShippingSnapshot  JSONB      `json:"shipping_snapshot" gorm:"type:jsonb"`
	BillingSnapshot   JSONB      `json:"billing_snapshot,omitempty" gorm:"type:jsonb"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	User            User            `json:"-" gorm:"foreignKey:UserID"`
	ShippingAddress *Address        `json:"shipping_address,omitempty" gorm:"foreignKey:ShippingAddressID"`
	BillingProfile  *BillingProfile `json:"billing_profile,omitempty" gorm:"foreignKey:BillingProfileID"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID `json:"product_id,omitempty" gorm:"type:uuid"`
	Quantity  int        `json:"quantity" gorm:"not null"`
	UnitPrice float64    `json:"unit_price" gorm:"type:decimal(10,2);not null"`

	// ProductSnapshot keeps the order displayable after the product is
	// edited or deleted.
	ProductSnapshot JSONB `json:"product_snapshot" gorm:"type:jsonb"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
