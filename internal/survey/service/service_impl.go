package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	"github.com/smallbiznis/voicepost/internal/clock"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
	"github.com/smallbiznis/voicepost/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID        *snowflake.Node
	clock        clock.Clock
	definitions  repository.Repository[surveydomain.SurveyDefinition]
	responses    repository.Repository[surveydomain.SurveyResponse]
	businessRepo repository.Repository[businessdomain.Business]
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

func NewService(p ServiceParam) surveydomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("survey.service"),

		genID:        p.GenID,
		clock:        p.Clock,
		definitions:  repository.ProvideStore[surveydomain.SurveyDefinition](p.DB),
		responses:    repository.ProvideStore[surveydomain.SurveyResponse](p.DB),
		businessRepo: repository.ProvideStore[businessdomain.Business](p.DB),
	}
}

func (s *Service) LatestForBusiness(ctx context.Context, businessID string) (*surveydomain.DefinitionResponse, error) {
	id, err := surveydomain.ParseID(businessID)
	if err != nil {
		return nil, surveydomain.ErrInvalidID
	}

	var row surveydomain.SurveyDefinition
	err = s.db.WithContext(ctx).
		Where("business_id = ?", id).
		Order("version DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, surveydomain.ErrNotFound
		}
		return nil, err
	}
	resp := toDefinitionResponse(row)
	return &resp, nil
}

// Submit stores one answer set against the business's latest survey
// version.
func (s *Service) Submit(ctx context.Context, req surveydomain.SubmitRequest) (*surveydomain.ResponseView, error) {
	businessID, err := surveydomain.ParseID(req.BusinessID)
	if err != nil {
		return nil, surveydomain.ErrInvalidID
	}
	if len(req.Answers) == 0 {
		return nil, surveydomain.ErrInvalidAnswers
	}
	if _, err := s.businessRepo.First(ctx, "id = ?", businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, surveydomain.ErrNotFound
		}
		return nil, err
	}

	var definition surveydomain.SurveyDefinition
	err = s.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("version DESC").
		First(&definition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, surveydomain.ErrNotFound
		}
		return nil, err
	}

	encoded, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, surveydomain.ErrInvalidAnswers
	}
	row := surveydomain.SurveyResponse{
		ID:                 s.genID.Generate(),
		BusinessID:         businessID,
		SurveyDefinitionID: definition.ID,
		Answers:            encoded,
		FreeComment:        strings.TrimSpace(req.FreeComment),
		CreatedAt:          s.clock.Now(),
	}
	if err := s.responses.Create(ctx, &row); err != nil {
		return nil, err
	}

	s.log.Info("survey response submitted",
		zap.String("business_id", businessID.String()),
		zap.String("response_id", row.ID.String()),
	)
	return toResponseView(row)
}

func (s *Service) GetResponse(ctx context.Context, id string) (*surveydomain.ResponseView, error) {
	parsed, err := surveydomain.ParseID(id)
	if err != nil {
		return nil, surveydomain.ErrInvalidID
	}
	row, err := s.responses.First(ctx, "id = ?", parsed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, surveydomain.ErrNotFound
		}
		return nil, err
	}
	return toResponseView(*row)
}

func (s *Service) ListResponses(ctx context.Context, businessID string) ([]surveydomain.ResponseView, error) {
	parsed, err := surveydomain.ParseID(businessID)
	if err != nil {
		return nil, surveydomain.ErrInvalidID
	}

	var rows []surveydomain.SurveyResponse
	err = s.db.WithContext(ctx).
		Where("business_id = ?", parsed).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]surveydomain.ResponseView, 0, len(rows))
	for _, row := range rows {
		view, err := toResponseView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *view)
	}
	return out, nil
}

func toDefinitionResponse(d surveydomain.SurveyDefinition) surveydomain.DefinitionResponse {
	return surveydomain.DefinitionResponse{
		ID:         d.ID.String(),
		BusinessID: d.BusinessID.String(),
		Version:    d.Version,
		Questions:  json.RawMessage(d.Questions),
		CreatedAt:  d.CreatedAt,
	}
}

func toResponseView(r surveydomain.SurveyResponse) (*surveydomain.ResponseView, error) {
	var answers []surveydomain.Answer
	if len(r.Answers) > 0 {
		if err := json.Unmarshal(r.Answers, &answers); err != nil {
			return nil, err
		}
	}
	return &surveydomain.ResponseView{
		ID:          r.ID.String(),
		BusinessID:  r.BusinessID.String(),
		SurveyID:    r.SurveyDefinitionID.String(),
		Answers:     answers,
		FreeComment: r.FreeComment,
		CreatedAt:   r.CreatedAt,
	}, nil
}
