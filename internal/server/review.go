package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	reviewdomain "github.com/smallbiznis/voicepost/internal/review/domain"
)

func (s *Server) GenerateReview(c *gin.Context) {
	if !s.generateLimiter.Allow(c.ClientIP()) {
		AbortWithError(c, ErrRateLimited)
		return
	}

	var req reviewdomain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.BusinessID == "" {
		AbortWithError(c, newValidationError("business_id", "missing_business_id", "business id is required"))
		return
	}
	if req.SurveyResponseID == "" {
		AbortWithError(c, newValidationError("survey_response_id", "missing_survey_response_id", "survey response id is required"))
		return
	}

	resp, err := s.reviewSvc.Generate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetReview(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "review id is required"))
		return
	}

	resp, err := s.reviewSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) ListReviews(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "business id is required"))
		return
	}

	items, err := s.reviewSvc.ListForBusiness(c.Request.Context(), businessID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}
