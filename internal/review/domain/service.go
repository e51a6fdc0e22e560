package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/voicepost/internal/aigen"
)

type GenerateRequest struct {
	BusinessID       string `json:"business_id"`
	SurveyResponseID string `json:"survey_response_id"`
}

type CopyResponse struct {
	ID               string    `json:"id"`
	BusinessID       string    `json:"business_id"`
	SurveyResponseID string    `json:"survey_response_id"`
	ReviewText       string    `json:"review_text"`
	Source           string    `json:"source"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type GenerateResponse struct {
	Copy       CopyResponse     `json:"copy"`
	Validation aigen.Validation `json:"validation"`
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	GetByID(ctx context.Context, id string) (*CopyResponse, error)
	ListForBusiness(ctx context.Context, businessID string) ([]CopyResponse, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)

const StatusDraft = "draft"
