package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a purchasable digital product. Products are read-only
// from the checkout workflow's perspective; only the admin mutates them.
type Product struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	Price        int       `json:"price" gorm:"not null"` // whole rupiah
	FileURL      string    `json:"file_url" gorm:"not null"`
	ThumbnailURL string    `json:"thumbnail_url"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key so the product id can be used
// directly as an external reference.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
