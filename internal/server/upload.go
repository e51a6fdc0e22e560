package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/voicepost/internal/assets"
)

// Upload accepts one multipart image and returns the URL it is served
// from. Type and size policy lives in the asset store.
func (s *Server) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		AbortWithError(c, newValidationError("file", "missing_file", "multipart field 'file' is required"))
		return
	}
	if file.Size > s.cfg.MaxUploadSize {
		AbortWithError(c, assets.ErrTooLarge)
		return
	}

	src, err := file.Open()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.cfg.MaxUploadSize+1))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	mime := file.Header.Get("Content-Type")
	if mime == "" {
		mime = http.DetectContentType(data)
	}

	url, err := s.store.Save(mime, data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
