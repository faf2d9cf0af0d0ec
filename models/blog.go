package models

import (
	"gorm.io/gorm"
)

// Blog represents a blog post
type Blog struct {
	gorm.Model
	Title      string   `json:"title" gorm:"not null"`
	Slug       string   `json:"slug" gorm:"uniqueIndex;not null"`
	Content    string   `json:"content" gorm:"type:text"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags" gorm:"serializer:json"`
	Published  bool     `json:"published" gorm:"default:true"`
}

// Project represents a portfolio project entry
type Project struct {
	gorm.Model
	Title       string   `json:"title" gorm:"not null"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	DemoURL     string   `json:"demo_url"`
	RepoURL     string   `json:"repo_url"`
	TechStack   []string `json:"tech_stack" gorm:"serializer:json"`
	Featured    bool     `json:"featured" gorm:"default:false"`
}
