// internal/models/promotion.go
package models

// Promotion is a home-page banner. ImageFile holds either a stored file name
// or an absolute URL; Priority orders the carousel, highest first.
type Promotion struct {
	BaseModel
	ImageFile   string `json:"image_file" gorm:"size:500;not null"`
	RedirectURL string `json:"redirect_url" gorm:"size:500;not null"`
	Priority    int    `json:"priority" gorm:"not null;default:0"`
}
