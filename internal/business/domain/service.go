package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

type ListRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

type Question struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"` // rating | multi_select | free_text
	Label   string   `json:"label"`
	Options []string `json:"options,omitempty"`
}

type CreateRequest struct {
	ServiceName     string     `json:"service_name"`
	Description     string     `json:"description"`
	WhatYouDo       string     `json:"what_you_do"`
	Category        string     `json:"category"`
	OwnerName       *string    `json:"owner_name"`
	LogoURL         *string    `json:"logo_url"`
	FaceURL         *string    `json:"face_url"`
	IsPublicGallery bool       `json:"is_public_gallery"`
	Questions       []Question `json:"questions"`
}

type UpdateRequest struct {
	AdminToken      string     `json:"-"`
	ServiceName     *string    `json:"service_name"`
	Description     *string    `json:"description"`
	WhatYouDo       *string    `json:"what_you_do"`
	Category        *string    `json:"category"`
	OwnerName       *string    `json:"owner_name"`
	LogoURL         *string    `json:"logo_url"`
	FaceURL         *string    `json:"face_url"`
	IsPublicGallery *bool      `json:"is_public_gallery"`
	Questions       []Question `json:"questions"`
}

// Response is the public shape of a business. The admin token is only
// included on creation, never on reads.
type Response struct {
	ID              string    `json:"id"`
	ServiceName     string    `json:"service_name"`
	Description     string    `json:"description"`
	WhatYouDo       string    `json:"what_you_do"`
	Category        string    `json:"category"`
	OwnerName       *string   `json:"owner_name"`
	LogoURL         *string   `json:"logo_url"`
	FaceURL         *string   `json:"face_url"`
	IsPublicGallery bool      `json:"is_public_gallery"`
	AdminToken      string    `json:"admin_token,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	GetByToken(ctx context.Context, token string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidServiceName = errors.New("invalid_service_name")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrNotFound           = errors.New("not_found")
)
