package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Business is one registered service accepting surveys.
type Business struct {
	ID              snowflake.ID `gorm:"primaryKey"`
	ServiceName     string       `gorm:"type:text;not null"`
	Description     string       `gorm:"type:text;not null"`
	WhatYouDo       string       `gorm:"type:text;not null"`
	Category        string       `gorm:"type:text;not null;default:'その他'"`
	OwnerName       *string      `gorm:"type:text"`
	LogoURL         *string      `gorm:"type:text"`
	FaceURL         *string      `gorm:"type:text"`
	IsPublicGallery bool         `gorm:"not null;default:false"`
	AdminToken      string       `gorm:"type:text;not null;uniqueIndex"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Business) TableName() string { return "businesses" }
