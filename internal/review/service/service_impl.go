package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/voicepost/internal/aigen"
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	"github.com/smallbiznis/voicepost/internal/config"
	"github.com/smallbiznis/voicepost/internal/observability/metrics"
	reviewdomain "github.com/smallbiznis/voicepost/internal/review/domain"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
	"github.com/smallbiznis/voicepost/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger
	cfg config.Config

	genID   *snowflake.Node
	gemini  *aigen.Gemini
	local   aigen.Local
	metrics *metrics.GenerationMetrics

	copies      repository.Repository[reviewdomain.GeneratedCopy]
	businesses  repository.Repository[businessdomain.Business]
	responses   repository.Repository[surveydomain.SurveyResponse]
	definitions repository.Repository[surveydomain.SurveyDefinition]
}

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Config  config.Config
	GenID   *snowflake.Node
	Gemini  *aigen.Gemini `optional:"true"`
	Local   aigen.Local
	Metrics *metrics.GenerationMetrics `optional:"true"`
}

func NewService(p ServiceParam) reviewdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("review.service"),
		cfg: p.Config,

		genID:   p.GenID,
		gemini:  p.Gemini,
		local:   p.Local,
		metrics: p.Metrics,

		copies:      repository.ProvideStore[reviewdomain.GeneratedCopy](p.DB),
		businesses:  repository.ProvideStore[businessdomain.Business](p.DB),
		responses:   repository.ProvideStore[surveydomain.SurveyResponse](p.DB),
		definitions: repository.ProvideStore[surveydomain.SurveyDefinition](p.DB),
	}
}

// Generate turns one survey response into review text. Gemini runs under
// a deadline; any failure falls back to the local generator without
// surfacing an error to the caller.
func (s *Service) Generate(ctx context.Context, req reviewdomain.GenerateRequest) (*reviewdomain.GenerateResponse, error) {
	businessID, err := reviewdomain.ParseID(req.BusinessID)
	if err != nil {
		return nil, reviewdomain.ErrInvalidID
	}
	responseID, err := reviewdomain.ParseID(req.SurveyResponseID)
	if err != nil {
		return nil, reviewdomain.ErrInvalidID
	}

	biz, err := s.businesses.First(ctx, "id = ?", businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reviewdomain.ErrNotFound
		}
		return nil, err
	}
	response, err := s.responses.First(ctx, "id = ? AND business_id = ?", responseID, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reviewdomain.ErrNotFound
		}
		return nil, err
	}
	definition, err := s.definitions.First(ctx, "id = ?", response.SurveyDefinitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reviewdomain.ErrNotFound
		}
		return nil, err
	}

	var questions []businessdomain.Question
	if err := json.Unmarshal(definition.Questions, &questions); err != nil {
		return nil, err
	}
	var answers []surveydomain.Answer
	if err := json.Unmarshal(response.Answers, &answers); err != nil {
		return nil, err
	}

	input := aigen.ReviewInput{
		ServiceName: biz.ServiceName,
		Description: biz.Description,
		WhatYouDo:   biz.WhatYouDo,
		Questions:   questions,
		Answers:     answers,
		FreeComment: response.FreeComment,
	}
	text, source := s.generateText(ctx, input)

	row := reviewdomain.GeneratedCopy{
		ID:               s.genID.Generate(),
		BusinessID:       businessID,
		SurveyResponseID: responseID,
		ReviewText:       text,
		Source:           source,
		Status:           reviewdomain.StatusDraft,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.copies.Create(ctx, &row); err != nil {
		return nil, err
	}

	s.metrics.ObserveReview(source)
	s.log.Info("review generated",
		zap.String("business_id", businessID.String()),
		zap.String("copy_id", row.ID.String()),
		zap.String("source", source),
	)
	return &reviewdomain.GenerateResponse{
		Copy:       toCopyResponse(row),
		Validation: aigen.ValidateReviewText(text),
	}, nil
}

// generateText prefers Gemini and degrades silently to the local
// generator. The local path can not fail.
func (s *Service) generateText(ctx context.Context, input aigen.ReviewInput) (string, string) {
	if s.gemini != nil {
		aiCtx, cancel := context.WithTimeout(ctx, s.cfg.AITimeout)
		defer cancel()
		text, source, err := s.gemini.GenerateReview(aiCtx, input)
		if err == nil {
			return text, source
		}
		s.log.Warn("gemini review generation failed, falling back", zap.Error(err))
	}
	text, source, _ := s.local.GenerateReview(ctx, input)
	return text, source
}

func (s *Service) GetByID(ctx context.Context, id string) (*reviewdomain.CopyResponse, error) {
	parsed, err := reviewdomain.ParseID(id)
	if err != nil {
		return nil, reviewdomain.ErrInvalidID
	}
	row, err := s.copies.First(ctx, "id = ?", parsed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reviewdomain.ErrNotFound
		}
		return nil, err
	}
	resp := toCopyResponse(*row)
	return &resp, nil
}

func (s *Service) ListForBusiness(ctx context.Context, businessID string) ([]reviewdomain.CopyResponse, error) {
	parsed, err := reviewdomain.ParseID(businessID)
	if err != nil {
		return nil, reviewdomain.ErrInvalidID
	}
	var rows []reviewdomain.GeneratedCopy
	err = s.db.WithContext(ctx).
		Where("business_id = ?", parsed).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]reviewdomain.CopyResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCopyResponse(row))
	}
	return out, nil
}

func toCopyResponse(c reviewdomain.GeneratedCopy) reviewdomain.CopyResponse {
	return reviewdomain.CopyResponse{
		ID:               c.ID.String(),
		BusinessID:       c.BusinessID.String(),
		SurveyResponseID: c.SurveyResponseID.String(),
		ReviewText:       c.ReviewText,
		Source:           c.Source,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
	}
}
