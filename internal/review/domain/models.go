package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// GeneratedCopy is one AI- or locally-generated review text.
type GeneratedCopy struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	BusinessID       snowflake.ID `gorm:"not null;index"`
	SurveyResponseID snowflake.ID `gorm:"not null;index"`
	ReviewText       string       `gorm:"type:text;not null"`
	Source           string       `gorm:"type:text;not null"`
	Status           string       `gorm:"type:text;not null;default:'draft'"`
	CreatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (GeneratedCopy) TableName() string { return "generated_copies" }
