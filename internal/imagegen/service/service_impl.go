package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/voicepost/internal/aigen"
	"github.com/smallbiznis/voicepost/internal/assets"
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	"github.com/smallbiznis/voicepost/internal/config"
	imagedomain "github.com/smallbiznis/voicepost/internal/imagegen/domain"
	"github.com/smallbiznis/voicepost/internal/observability/metrics"
	"github.com/smallbiznis/voicepost/internal/poster"
	"github.com/smallbiznis/voicepost/internal/poster/raster"
	reviewdomain "github.com/smallbiznis/voicepost/internal/review/domain"
	"github.com/smallbiznis/voicepost/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	galleryDefaultLimit = 24
	galleryMaxLimit     = 100
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger
	cfg config.Config

	genID      *snowflake.Node
	gemini     *aigen.Gemini
	rasterizer *raster.Rasterizer
	fetcher    *raster.AssetFetcher
	store      *assets.Store
	metrics    *metrics.GenerationMetrics

	images     repository.Repository[imagedomain.GeneratedImage]
	businesses repository.Repository[businessdomain.Business]
	copies     repository.Repository[reviewdomain.GeneratedCopy]
}

type ServiceParam struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Config     config.Config
	GenID      *snowflake.Node
	Gemini     *aigen.Gemini `optional:"true"`
	Rasterizer *raster.Rasterizer
	Fetcher    *raster.AssetFetcher
	Store      *assets.Store
	Metrics    *metrics.GenerationMetrics `optional:"true"`
}

func NewService(p ServiceParam) imagedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("imagegen.service"),
		cfg: p.Config,

		genID:      p.GenID,
		gemini:     p.Gemini,
		rasterizer: p.Rasterizer,
		fetcher:    p.Fetcher,
		store:      p.Store,
		metrics:    p.Metrics,

		images:     repository.ProvideStore[imagedomain.GeneratedImage](p.DB),
		businesses: repository.ProvideStore[businessdomain.Business](p.DB),
		copies:     repository.ProvideStore[reviewdomain.GeneratedCopy](p.DB),
	}
}

// Generate produces one poster for a review copy. The raster path renders
// the template tree server-side; the AI path asks Gemini to compose the
// whole image. Any failure on either path surfaces uniformly as
// ErrGenerationFailed.
func (s *Service) Generate(ctx context.Context, req imagedomain.GenerateRequest) (*imagedomain.GenerateResponse, error) {
	businessID, err := imagedomain.ParseID(req.BusinessID)
	if err != nil {
		return nil, imagedomain.ErrInvalidID
	}
	copyID, err := imagedomain.ParseID(req.GeneratedCopyID)
	if err != nil {
		return nil, imagedomain.ErrInvalidID
	}
	descriptor, ok := poster.DescriptorByID(req.TemplateID)
	if !ok {
		return nil, imagedomain.ErrTemplateNotFound
	}
	preset := descriptor.PresetByLabel(req.SizePreset)

	biz, err := s.businesses.First(ctx, "id = ?", businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, imagedomain.ErrNotFound
		}
		return nil, err
	}
	copyRow, err := s.copies.First(ctx, "id = ? AND business_id = ?", copyID, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, imagedomain.ErrNotFound
		}
		return nil, err
	}

	path := imagedomain.PathRaster
	if req.UseAI && s.gemini != nil {
		path = imagedomain.PathAI
	}

	data, mime, err := s.compose(ctx, path, descriptor, preset, biz, copyRow)
	if err != nil {
		s.metrics.ObserveImage(path, "error")
		s.log.Error("image generation failed",
			zap.String("template_id", descriptor.ID),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", imagedomain.ErrGenerationFailed, err)
	}
	s.metrics.ObserveImage(path, "ok")

	url, err := s.store.Save(mime, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", imagedomain.ErrGenerationFailed, err)
	}

	row := imagedomain.GeneratedImage{
		ID:              s.genID.Generate(),
		BusinessID:      businessID,
		GeneratedCopyID: copyID,
		TemplateID:      descriptor.ID,
		ImageURL:        url,
		Width:           preset.Width,
		Height:          preset.Height,
		Path:            path,
		IsPublic:        biz.IsPublicGallery,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.images.Create(ctx, &row); err != nil {
		return nil, err
	}

	return &imagedomain.GenerateResponse{
		Image:             toImageView(row),
		Template:          descriptor,
		Business:          toBusinessResponse(*biz),
		Copy:              toCopyResponse(*copyRow),
		Size:              preset,
		GeneratedImageURL: url,
	}, nil
}

func (s *Service) compose(
	ctx context.Context,
	path string,
	descriptor poster.Descriptor,
	preset poster.SizePreset,
	biz *businessdomain.Business,
	copyRow *reviewdomain.GeneratedCopy,
) ([]byte, string, error) {
	if path == imagedomain.PathAI {
		return s.composeAI(ctx, descriptor, preset, biz, copyRow)
	}

	identity := poster.BusinessIdentity{
		ServiceName:  biz.ServiceName,
		Description:  biz.Description,
		WhatYouDo:    biz.WhatYouDo,
		OwnerName:    deref(biz.OwnerName),
		FaceImageRef: deref(biz.FaceURL),
		LogoImageRef: deref(biz.LogoURL),
	}
	sp := poster.RenderSpec{TemplateID: descriptor.ID, Width: preset.Width, Height: preset.Height}

	started := time.Now()
	tree := poster.Render(identity, copyRow.ReviewText, sp)
	data, err := s.rasterizer.Rasterize(ctx, tree, sp)
	if err != nil {
		return nil, "", err
	}
	s.metrics.ObserveRender(descriptor.ID, time.Since(started))
	return data, "image/png", nil
}

func (s *Service) composeAI(
	ctx context.Context,
	descriptor poster.Descriptor,
	preset poster.SizePreset,
	biz *businessdomain.Business,
	copyRow *reviewdomain.GeneratedCopy,
) ([]byte, string, error) {
	input := aigen.ImageInput{
		ServiceName: biz.ServiceName,
		Description: biz.Description,
		WhatYouDo:   biz.WhatYouDo,
		OwnerName:   deref(biz.OwnerName),
		ReviewText:  copyRow.ReviewText,
		TemplateID:  descriptor.ID,
		Width:       preset.Width,
		Height:      preset.Height,
		HasFace:     biz.FaceURL != nil,
		HasLogo:     biz.LogoURL != nil,
	}
	// Multimodal attachments are best effort; a dead asset URL should
	// not kill the generation.
	if biz.FaceURL != nil {
		if data, mime, err := s.fetcher.FetchBytes(ctx, *biz.FaceURL); err == nil {
			input.FaceImage, input.FaceMIME = data, mime
		}
	}
	if biz.LogoURL != nil {
		if data, mime, err := s.fetcher.FetchBytes(ctx, *biz.LogoURL); err == nil {
			input.LogoImage, input.LogoMIME = data, mime
		}
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.cfg.AITimeout)
	defer cancel()
	return s.gemini.GenerateImage(aiCtx, input)
}

// Gallery returns the public posters, newest first, joined with the
// business and review copy they came from.
func (s *Service) Gallery(ctx context.Context, req imagedomain.GalleryRequest) ([]imagedomain.GalleryItem, error) {
	limit := req.Limit
	if limit <= 0 || limit > galleryMaxLimit {
		limit = galleryDefaultLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	var rows []imagedomain.GeneratedImage
	err := s.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []imagedomain.GalleryItem{}, nil
	}

	bizIDs := make([]snowflake.ID, 0, len(rows))
	copyIDs := make([]snowflake.ID, 0, len(rows))
	for _, row := range rows {
		bizIDs = append(bizIDs, row.BusinessID)
		copyIDs = append(copyIDs, row.GeneratedCopyID)
	}

	var businesses []businessdomain.Business
	if err := s.db.WithContext(ctx).Where("id IN ?", bizIDs).Find(&businesses).Error; err != nil {
		return nil, err
	}
	bizByID := make(map[snowflake.ID]businessdomain.Business, len(businesses))
	for _, b := range businesses {
		bizByID[b.ID] = b
	}

	var copies []reviewdomain.GeneratedCopy
	if err := s.db.WithContext(ctx).Where("id IN ?", copyIDs).Find(&copies).Error; err != nil {
		return nil, err
	}
	copyByID := make(map[snowflake.ID]reviewdomain.GeneratedCopy, len(copies))
	for _, cp := range copies {
		copyByID[cp.ID] = cp
	}

	items := make([]imagedomain.GalleryItem, 0, len(rows))
	for _, row := range rows {
		item := imagedomain.GalleryItem{ImageView: toImageView(row)}
		if b, ok := bizByID[row.BusinessID]; ok {
			item.ServiceName = b.ServiceName
			item.Category = b.Category
		}
		if cp, ok := copyByID[row.GeneratedCopyID]; ok {
			item.ReviewText = cp.ReviewText
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Service) ListForBusiness(ctx context.Context, businessID string) ([]imagedomain.ImageView, error) {
	parsed, err := imagedomain.ParseID(businessID)
	if err != nil {
		return nil, imagedomain.ErrInvalidID
	}
	var rows []imagedomain.GeneratedImage
	err = s.db.WithContext(ctx).
		Where("business_id = ?", parsed).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toImageViews(rows), nil
}

func toImageViews(rows []imagedomain.GeneratedImage) []imagedomain.ImageView {
	out := make([]imagedomain.ImageView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toImageView(row))
	}
	return out
}

func toImageView(g imagedomain.GeneratedImage) imagedomain.ImageView {
	return imagedomain.ImageView{
		ID:         g.ID.String(),
		BusinessID: g.BusinessID.String(),
		CopyID:     g.GeneratedCopyID.String(),
		TemplateID: g.TemplateID,
		ImageURL:   g.ImageURL,
		Width:      g.Width,
		Height:     g.Height,
		Path:       g.Path,
		IsPublic:   g.IsPublic,
		CreatedAt:  g.CreatedAt,
	}
}

func toBusinessResponse(b businessdomain.Business) businessdomain.Response {
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

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
