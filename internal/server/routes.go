package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/voicepost/internal/config"
	"github.com/smallbiznis/voicepost/internal/observability/logger"
	"github.com/smallbiznis/voicepost/internal/observability/metrics"
)

// NewRouter builds the gin engine with the shared middleware chain.
func NewRouter(cfg config.Config, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(metrics.GinMiddleware(httpMetrics))
	return r
}

// RegisterRoutes attaches every handler to the engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", s.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if dir := s.store.Dir(); dir != "" {
		r.Static(s.store.BaseURL(), dir)
	}

	api := r.Group("/api")
	{
		api.GET("/templates", s.ListTemplates)

		api.GET("/businesses", s.ListBusinesses)
		api.POST("/businesses", s.CreateBusiness)
		api.GET("/businesses/:id", s.GetBusiness)
		api.PUT("/businesses/:id", s.UpdateBusiness)
		api.GET("/businesses/:id/survey", s.GetSurvey)
		api.GET("/businesses/:id/survey-responses", s.ListSurveyResponses)
		api.GET("/businesses/:id/reviews", s.ListReviews)
		api.GET("/businesses/:id/images", s.ListImages)

		api.POST("/survey-responses", s.SubmitSurveyResponse)
		api.GET("/survey-responses/:id", s.GetSurveyResponse)

		api.POST("/generate-review", s.GenerateReview)
		api.GET("/reviews/:id", s.GetReview)

		api.POST("/generate-image", s.GenerateImage)
		api.GET("/gallery", s.Gallery)

		api.POST("/upload", s.Upload)
	}
}
