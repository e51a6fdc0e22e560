package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
)

func (s *Server) GetSurvey(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "business id is required"))
		return
	}

	resp, err := s.surveySvc.LatestForBusiness(c.Request.Context(), businessID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) SubmitSurveyResponse(c *gin.Context) {
	var req surveydomain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.BusinessID == "" {
		AbortWithError(c, newValidationError("business_id", "missing_business_id", "business id is required"))
		return
	}

	resp, err := s.surveySvc.Submit(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetSurveyResponse(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "survey response id is required"))
		return
	}

	resp, err := s.surveySvc.GetResponse(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) ListSurveyResponses(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "business id is required"))
		return
	}

	items, err := s.surveySvc.ListResponses(c.Request.Context(), businessID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}
