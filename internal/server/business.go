package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
)

type createBusinessRequest struct {
	ServiceName     string                    `json:"service_name"`
	Description     string                    `json:"description"`
	WhatYouDo       string                    `json:"what_you_do"`
	Category        string                    `json:"category"`
	OwnerName       *string                   `json:"owner_name"`
	LogoURL         *string                   `json:"logo_url"`
	FaceURL         *string                   `json:"face_url"`
	IsPublicGallery bool                      `json:"is_public_gallery"`
	Questions       []businessdomain.Question `json:"questions"`
}

type createBusinessResponse struct {
	*businessdomain.Response
	AdminURL string `json:"admin_url"`
}

func (s *Server) CreateBusiness(c *gin.Context) {
	var req createBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.businessSvc.Create(c.Request.Context(), businessdomain.CreateRequest{
		ServiceName:     strings.TrimSpace(req.ServiceName),
		Description:     strings.TrimSpace(req.Description),
		WhatYouDo:       strings.TrimSpace(req.WhatYouDo),
		Category:        strings.TrimSpace(req.Category),
		OwnerName:       req.OwnerName,
		LogoURL:         req.LogoURL,
		FaceURL:         req.FaceURL,
		IsPublicGallery: req.IsPublicGallery,
		Questions:       req.Questions,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, createBusinessResponse{
		Response: resp,
		AdminURL: "/admin/" + resp.AdminToken,
	})
}

func (s *Server) ListBusinesses(c *gin.Context) {
	var req businessdomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	items, err := s.businessSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

type businessDetailResponse struct {
	*businessdomain.Response
	Survey *surveydomain.DefinitionResponse `json:"survey,omitempty"`
}

// GetBusiness resolves :id as a business id, or as an admin token when
// ?admin=true. The token path returns the full view including the token
// itself so the admin page can be reopened from a bookmarked URL.
func (s *Server) GetBusiness(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "business id is required"))
		return
	}

	ctx := c.Request.Context()

	var (
		resp *businessdomain.Response
		err  error
	)
	if c.Query("admin") == "true" {
		resp, err = s.businessSvc.GetByToken(ctx, id)
		if err == nil {
			resp.AdminToken = id
		}
	} else {
		resp, err = s.businessSvc.GetByID(ctx, id)
	}
	if err != nil {
		AbortWithError(c, err)
		return
	}

	detail := businessDetailResponse{Response: resp}
	survey, err := s.surveySvc.LatestForBusiness(ctx, resp.ID)
	if err == nil {
		detail.Survey = survey
	} else if !errors.Is(err, surveydomain.ErrNotFound) {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

type updateBusinessRequest struct {
	AdminToken      string                    `json:"admin_token"`
	ServiceName     *string                   `json:"service_name"`
	Description     *string                   `json:"description"`
	WhatYouDo       *string                   `json:"what_you_do"`
	Category        *string                   `json:"category"`
	OwnerName       *string                   `json:"owner_name"`
	LogoURL         *string                   `json:"logo_url"`
	FaceURL         *string                   `json:"face_url"`
	IsPublicGallery *bool                     `json:"is_public_gallery"`
	Questions       []businessdomain.Question `json:"questions"`
}

// UpdateBusiness applies a partial update authorized by the admin token,
// which may arrive in the body or the X-Admin-Token header. The token
// must belong to the business named in the path.
func (s *Server) UpdateBusiness(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "business id is required"))
		return
	}

	var req updateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	token := strings.TrimSpace(req.AdminToken)
	if token == "" {
		token = strings.TrimSpace(c.GetHeader("X-Admin-Token"))
	}
	if token == "" {
		AbortWithError(c, businessdomain.ErrInvalidToken)
		return
	}

	ctx := c.Request.Context()

	owner, err := s.businessSvc.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, businessdomain.ErrNotFound) {
			err = businessdomain.ErrInvalidToken
		}
		AbortWithError(c, err)
		return
	}
	if owner.ID != id {
		AbortWithError(c, businessdomain.ErrInvalidToken)
		return
	}

	resp, err := s.businessSvc.Update(ctx, businessdomain.UpdateRequest{
		AdminToken:      token,
		ServiceName:     req.ServiceName,
		Description:     req.Description,
		WhatYouDo:       req.WhatYouDo,
		Category:        req.Category,
		OwnerName:       req.OwnerName,
		LogoURL:         req.LogoURL,
		FaceURL:         req.FaceURL,
		IsPublicGallery: req.IsPublicGallery,
		Questions:       req.Questions,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
