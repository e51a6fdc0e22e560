package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// GeneratedImage is one finished poster.
type GeneratedImage struct {
	ID              snowflake.ID `gorm:"primaryKey"`
	BusinessID      snowflake.ID `gorm:"not null;index"`
	GeneratedCopyID snowflake.ID `gorm:"not null;index"`
	TemplateID      string       `gorm:"type:text;not null"`
	ImageURL        string       `gorm:"type:text;not null"`
	Width           int          `gorm:"not null"`
	Height          int          `gorm:"not null"`
	Path            string       `gorm:"type:text;not null"` // raster | ai
	IsPublic        bool         `gorm:"not null;default:false"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (GeneratedImage) TableName() string { return "generated_images" }
