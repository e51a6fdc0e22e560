package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/voicepost/internal/assets"
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	imagedomain "github.com/smallbiznis/voicepost/internal/imagegen/domain"
	reviewdomain "github.com/smallbiznis/voicepost/internal/review/domain"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
)

// apiError is the JSON error envelope every handler speaks. Status is
// the HTTP status and is not serialized.
type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Message }

var (
	ErrNotFound = &apiError{
		Status:  http.StatusNotFound,
		Code:    "not_found",
		Message: "resource not found",
	}
	ErrForbidden = &apiError{
		Status:  http.StatusForbidden,
		Code:    "forbidden",
		Message: "admin token is invalid",
	}
	ErrRateLimited = &apiError{
		Status:  http.StatusTooManyRequests,
		Code:    "rate_limited",
		Message: "too many generation requests, retry later",
	}
)

func invalidRequestError() *apiError {
	return &apiError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "request body could not be parsed",
	}
}

func newValidationError(field, code, message string) *apiError {
	return &apiError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// AbortWithError translates domain errors to HTTP responses. Unknown
// errors become opaque 500s so internals never leak to clients.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	status := http.StatusInternalServerError
	code := "internal_error"
	message := "something went wrong"

	switch {
	case errors.Is(err, businessdomain.ErrNotFound),
		errors.Is(err, surveydomain.ErrNotFound),
		errors.Is(err, reviewdomain.ErrNotFound),
		errors.Is(err, imagedomain.ErrNotFound):
		status, code, message = http.StatusNotFound, "not_found", "resource not found"
	case errors.Is(err, imagedomain.ErrTemplateNotFound):
		status, code, message = http.StatusNotFound, "template_not_found", "unknown template id"
	case errors.Is(err, businessdomain.ErrInvalidToken):
		status, code, message = http.StatusForbidden, "forbidden", "admin token is invalid"
	case errors.Is(err, businessdomain.ErrInvalidID),
		errors.Is(err, surveydomain.ErrInvalidID),
		errors.Is(err, reviewdomain.ErrInvalidID),
		errors.Is(err, imagedomain.ErrInvalidID):
		status, code, message = http.StatusBadRequest, "invalid_id", "id is not valid"
	case errors.Is(err, businessdomain.ErrInvalidServiceName):
		status, code, message = http.StatusBadRequest, "invalid_service_name", "service name is required"
	case errors.Is(err, surveydomain.ErrInvalidAnswers):
		status, code, message = http.StatusBadRequest, "invalid_answers", "at least one answer is required"
	case errors.Is(err, imagedomain.ErrGenerationFailed):
		status, code, message = http.StatusBadGateway, "generation_failed", "image generation failed"
	case errors.Is(err, assets.ErrTooLarge):
		status, code, message = http.StatusRequestEntityTooLarge, "file_too_large", "uploaded file exceeds the size limit"
	case errors.Is(err, assets.ErrUnsupportedType):
		status, code, message = http.StatusUnsupportedMediaType, "unsupported_type", "only jpeg, png and webp uploads are accepted"
	}

	c.AbortWithStatusJSON(status, gin.H{"error": &apiError{
		Status:  status,
		Code:    code,
		Message: message,
	}})
}
