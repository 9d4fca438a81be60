// internal/models/contact.go
package models

type Contact struct {
	BaseModel
	Name    string `json:"name" gorm:"size:120;not null"`
	Email   string `json:"email" gorm:"size:255;not null"`
	Message string `json:"message" gorm:"type:text;not null"`
}
