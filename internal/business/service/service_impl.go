package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	"github.com/smallbiznis/voicepost/internal/clock"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
	"github.com/smallbiznis/voicepost/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultCategory = "その他"

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository[businessdomain.Business]
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

func NewService(p ServiceParam) businessdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("business.service"),

		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.ProvideStore[businessdomain.Business](p.DB),
	}
}

// Create registers a business together with its initial survey
// definition. Both rows land in one transaction so a half-registered
// business can never accept responses.
func (s *Service) Create(ctx context.Context, req businessdomain.CreateRequest) (*businessdomain.Response, error) {
	name := strings.TrimSpace(req.ServiceName)
	if name == "" {
		return nil, businessdomain.ErrInvalidServiceName
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = defaultCategory
	}
	questions := req.Questions
	if len(questions) == 0 {
		questions = DefaultQuestions()
	}
	encoded, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	biz := businessdomain.Business{
		ID:              s.genID.Generate(),
		ServiceName:     name,
		Description:     strings.TrimSpace(req.Description),
		WhatYouDo:       strings.TrimSpace(req.WhatYouDo),
		Category:        category,
		OwnerName:       req.OwnerName,
		LogoURL:         req.LogoURL,
		FaceURL:         req.FaceURL,
		IsPublicGallery: req.IsPublicGallery,
		AdminToken:      uuid.NewString(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	definition := surveydomain.SurveyDefinition{
		ID:         s.genID.Generate(),
		BusinessID: biz.ID,
		Version:    1,
		Questions:  encoded,
		CreatedAt:  now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&biz).Error; err != nil {
			return err
		}
		return tx.Create(&definition).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("business registered",
		zap.String("business_id", biz.ID.String()),
		zap.String("category", biz.Category),
	)
	resp := toResponse(biz)
	resp.AdminToken = biz.AdminToken
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req businessdomain.ListRequest) ([]businessdomain.Response, error) {
	q := s.db.WithContext(ctx).Model(&businessdomain.Business{}).Order("created_at DESC")
	if search := strings.TrimSpace(req.Search); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("service_name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []businessdomain.Business
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]businessdomain.Response, 0, len(rows))
	for _, row := range rows {
		out = append(out, toResponse(row))
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*businessdomain.Response, error) {
	parsed, err := businessdomain.ParseID(id)
	if err != nil {
		return nil, businessdomain.ErrInvalidID
	}
	row, err := s.repo.First(ctx, "id = ?", parsed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, businessdomain.ErrNotFound
		}
		return nil, err
	}
	resp := toResponse(*row)
	return &resp, nil
}

func (s *Service) GetByToken(ctx context.Context, token string) (*businessdomain.Response, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, businessdomain.ErrInvalidToken
	}
	row, err := s.repo.First(ctx, "admin_token = ?", token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, businessdomain.ErrNotFound
		}
		return nil, err
	}
	resp := toResponse(*row)
	return &resp, nil
}

// Update applies a partial edit authorised by the admin token. A new
// question set, when present, is stored as the next survey version.
func (s *Service) Update(ctx context.Context, req businessdomain.UpdateRequest) (*businessdomain.Response, error) {
	token := strings.TrimSpace(req.AdminToken)
	if token == "" {
		return nil, businessdomain.ErrInvalidToken
	}

	var row businessdomain.Business
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("admin_token = ?", token).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return businessdomain.ErrNotFound
			}
			return err
		}

		fields := map[string]any{"updated_at": s.clock.Now()}
		if req.ServiceName != nil {
			name := strings.TrimSpace(*req.ServiceName)
			if name == "" {
				return businessdomain.ErrInvalidServiceName
			}
			fields["service_name"] = name
		}
		if req.Description != nil {
			fields["description"] = strings.TrimSpace(*req.Description)
		}
		if req.WhatYouDo != nil {
			fields["what_you_do"] = strings.TrimSpace(*req.WhatYouDo)
		}
		if req.Category != nil {
			fields["category"] = strings.TrimSpace(*req.Category)
		}
		if req.OwnerName != nil {
			fields["owner_name"] = *req.OwnerName
		}
		if req.LogoURL != nil {
			fields["logo_url"] = *req.LogoURL
		}
		if req.FaceURL != nil {
			fields["face_url"] = *req.FaceURL
		}
		if req.IsPublicGallery != nil {
			fields["is_public_gallery"] = *req.IsPublicGallery
		}
		if err := tx.Model(&row).Updates(fields).Error; err != nil {
			return err
		}

		if len(req.Questions) > 0 {
			encoded, err := json.Marshal(req.Questions)
			if err != nil {
				return err
			}
			var latest surveydomain.SurveyDefinition
			version := 1
			err = tx.Where("business_id = ?", row.ID).Order("version DESC").First(&latest).Error
			if err == nil {
				version = latest.Version + 1
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			next := surveydomain.SurveyDefinition{
				ID:         s.genID.Generate(),
				BusinessID: row.ID,
				Version:    version,
				Questions:  encoded,
				CreatedAt:  s.clock.Now(),
			}
			if err := tx.Create(&next).Error; err != nil {
				return err
			}
		}

		return tx.First(&row, "id = ?", row.ID).Error
	})
	if err != nil {
		return nil, err
	}

	resp := toResponse(row)
	return &resp, nil
}

// DefaultQuestions is the survey every business starts with.
func DefaultQuestions() []businessdomain.Question {
	return []businessdomain.Question{
		{ID: "q1", Type: "rating", Label: "満足度を教えてください"},
		{ID: "q2", Type: "multi_select", Label: "良かった点を教えてください", Options: []string{
			"説明が丁寧", "技術が高い", "接客が良い", "通いやすい", "価格が適正", "清潔感がある",
		}},
		{ID: "q3", Type: "free_text", Label: "感想があれば自由にお書きください"},
	}
}

func toResponse(b businessdomain.Business) businessdomain.Response {
	return businessdomain.Response{
		ID:              b.ID.String(),
		ServiceName:     b.ServiceName,
		Description:     b.Description,
		WhatYouDo:       b.WhatYouDo,
		Category:        b.Category,
		OwnerName:       b.OwnerName,
		LogoURL:         b.LogoURL,
		FaceURL:         b.FaceURL,
		IsPublicGallery: b.IsPublicGallery,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
