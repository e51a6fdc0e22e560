package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	"github.com/smallbiznis/voicepost/internal/poster"
	reviewdomain "github.com/smallbiznis/voicepost/internal/review/domain"
)

type GenerateRequest struct {
	TemplateID      string `json:"template_id"`
	GeneratedCopyID string `json:"generated_copy_id"`
	BusinessID      string `json:"business_id"`
	SizePreset      string `json:"size_preset"`
	UseAI           bool   `json:"use_ai"`
}

type ImageView struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	CopyID     string    `json:"generated_copy_id"`
	TemplateID string    `json:"template_id"`
	ImageURL   string    `json:"image_url"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Path       string    `json:"path"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
}

// GalleryRequest pages through the public gallery. Limit is clamped
// server-side.
type GalleryRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// GalleryItem is an ImageView enriched with the business and review it
// was generated from, so the gallery can render cards without extra
// lookups.
type GalleryItem struct {
	ImageView
	ServiceName string `json:"service_name"`
	Category    string `json:"category"`
	ReviewText  string `json:"review_text"`
}

type GenerateResponse struct {
	Image             ImageView                 `json:"image"`
	Template          poster.Descriptor         `json:"template"`
	Business          businessdomain.Response   `json:"business"`
	Copy              reviewdomain.CopyResponse `json:"copy"`
	Size              poster.SizePreset         `json:"size"`
	GeneratedImageURL string                    `json:"generated_image_url"`
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	Gallery(ctx context.Context, req GalleryRequest) ([]GalleryItem, error)
	ListForBusiness(ctx context.Context, businessID string) ([]ImageView, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID        = errors.New("invalid_id")
	ErrTemplateNotFound = errors.New("template_not_found")
	ErrNotFound         = errors.New("not_found")
	ErrGenerationFailed = errors.New("generation_failed")
)

// Generation path labels.
const (
	PathRaster = "raster"
	PathAI     = "ai"
)
