package server

import (
	"github.com/smallbiznis/voicepost/internal/assets"
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	"github.com/smallbiznis/voicepost/internal/config"
	imagedomain "github.com/smallbiznis/voicepost/internal/imagegen/domain"
	reviewdomain "github.com/smallbiznis/voicepost/internal/review/domain"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server owns the HTTP handlers and the services they delegate to.
type Server struct {
	cfg config.Config
	log *zap.Logger
	db  *gorm.DB

	businessSvc businessdomain.Service
	surveySvc   surveydomain.Service
	reviewSvc   reviewdomain.Service
	imageSvc    imagedomain.Service
	store       *assets.Store

	generateLimiter *generationLimiter
}

type ServerParam struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
	DB     *gorm.DB

	BusinessSvc businessdomain.Service
	SurveySvc   surveydomain.Service
	ReviewSvc   reviewdomain.Service
	ImageSvc    imagedomain.Service
	Store       *assets.Store
}

func NewServer(p ServerParam) *Server {
	return &Server{
		cfg: p.Config,
		log: p.Log.Named("server"),
		db:  p.DB,

		businessSvc: p.BusinessSvc,
		surveySvc:   p.SurveySvc,
		reviewSvc:   p.ReviewSvc,
		imageSvc:    p.ImageSvc,
		store:       p.Store,

		generateLimiter: newGenerationLimiter(p.Config.GenerateRateLimit, p.Config.GenerateRateWindow),
	}
}
