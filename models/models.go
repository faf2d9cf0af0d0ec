package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin represents the back-office administrator
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Profile represents the single public profile shown on the portfolio home page
type Profile struct {
	gorm.Model
	Name      string `json:"name"`
	Headline  string `json:"headline"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	CVUrl     string `json:"cv_url"`
	Email     string `json:"email"`
	Location  string `json:"location"`
}

// SocialLink represents a social media link shown in the site footer/header
type SocialLink struct {
	gorm.Model
	Platform string `json:"platform" gorm:"not null"`
	URL      string `json:"url" gorm:"not null"`
	Icon     string `json:"icon"`
	Order    int    `json:"order" gorm:"default:0"`
}

// Experience represents a work experience entry on the CV section
type Experience struct {
	gorm.Model
	Company     string     `json:"company" gorm:"not null"`
	Role        string     `json:"role" gorm:"not null"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
}
