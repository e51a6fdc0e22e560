package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// SurveyDefinition is one versioned question set for a business.
type SurveyDefinition struct {
	ID         snowflake.ID   `gorm:"primaryKey"`
	BusinessID snowflake.ID   `gorm:"not null;index"`
	Version    int            `gorm:"not null;default:1"`
	Questions  datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (SurveyDefinition) TableName() string { return "survey_definitions" }

// SurveyResponse is one submitted answer set.
type SurveyResponse struct {
	ID                 snowflake.ID   `gorm:"primaryKey"`
	BusinessID         snowflake.ID   `gorm:"not null;index"`
	SurveyDefinitionID snowflake.ID   `gorm:"not null;index"`
	Answers            datatypes.JSON `gorm:"type:jsonb;not null"`
	FreeComment        string         `gorm:"type:text"`
	CreatedAt          time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (SurveyResponse) TableName() string { return "survey_responses" }
