package domain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Answer is one submitted answer keyed by question id. Value is a
// number for rating questions, a string list for multi selects, and a
// string for free text.
type Answer struct {
	QuestionID string `json:"question_id"`
	Value      any    `json:"value"`
}

type SubmitRequest struct {
	BusinessID  string   `json:"business_id"`
	Answers     []Answer `json:"answers"`
	FreeComment string   `json:"free_comment"`
}

type DefinitionResponse struct {
	ID         string          `json:"id"`
	BusinessID string          `json:"business_id"`
	Version    int             `json:"version"`
	Questions  json.RawMessage `json:"questions"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ResponseView struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	SurveyID    string    `json:"survey_definition_id"`
	Answers     []Answer  `json:"answers"`
	FreeComment string    `json:"free_comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type Service interface {
	LatestForBusiness(ctx context.Context, businessID string) (*DefinitionResponse, error)
	Submit(ctx context.Context, req SubmitRequest) (*ResponseView, error)
	GetResponse(ctx context.Context, id string) (*ResponseView, error)
	ListResponses(ctx context.Context, businessID string) ([]ResponseView, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidAnswers = errors.New("invalid_answers")
	ErrNotFound       = errors.New("not_found")
)
