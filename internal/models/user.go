// internal/models/user.go
package models

import (
	"strings"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	SoftDeleteModel
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"`
	FullName     string         `json:"full_name" gorm:"size:120;not null"`
	Roles        pq.StringArray `json:"roles" gorm:"type:text[];default:'{user}'"`

	// Relationships
	Addresses       []Address        `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
	BillingProfiles []BillingProfile `json:"billing_profiles,omitempty" gorm:"foreignKey:UserID"`
	Carts           []Cart           `json:"carts,omitempty" gorm:"foreignKey:UserID"`
	Orders          []Order          `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	Products        []Product        `json:"products,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Emails are stored lowercased so the unique index catches case variants.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}
