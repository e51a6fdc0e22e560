package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	imagedomain "github.com/smallbiznis/voicepost/internal/imagegen/domain"
	"github.com/smallbiznis/voicepost/internal/poster"
)

func (s *Server) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": poster.Templates()})
}

func (s *Server) GenerateImage(c *gin.Context) {
	if !s.generateLimiter.Allow(c.ClientIP()) {
		AbortWithError(c, ErrRateLimited)
		return
	}

	var req imagedomain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.BusinessID == "" {
		AbortWithError(c, newValidationError("business_id", "missing_business_id", "business id is required"))
		return
	}
	if req.GeneratedCopyID == "" {
		AbortWithError(c, newValidationError("generated_copy_id", "missing_generated_copy_id", "generated copy id is required"))
		return
	}

	resp, err := s.imageSvc.Generate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) Gallery(c *gin.Context) {
	var req imagedomain.GalleryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	items, err := s.imageSvc.Gallery(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) ListImages(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "business id is required"))
		return
	}

	items, err := s.imageSvc.ListForBusiness(c.Request.Context(), businessID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}
