package assets

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/smallbiznis/voicepost/internal/config"
	"go.uber.org/zap"
)

// Allowed upload types, by MIME.
var allowedTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

var (
	ErrTooLarge        = errors.New("upload_too_large")
	ErrUnsupportedType = errors.New("unsupported_media_type")
)

// Store persists uploaded and generated images on disk and hands back
// reachable URLs. When the disk is unavailable it degrades to inline
// data URLs so generation keeps working.
type Store struct {
	dir     string
	baseURL string
	maxSize int64
	log     *zap.Logger
}

func NewStore(cfg config.Config, log *zap.Logger) *Store {
	s := &Store{
		dir:     cfg.UploadDir,
		baseURL: cfg.UploadBaseURL,
		maxSize: cfg.MaxUploadSize,
		log:     log.Named("assets.store"),
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Warn("upload dir unavailable, falling back to data urls", zap.Error(err))
		s.dir = ""
	}
	return s
}

// Dir is the on-disk root for static file serving. Empty when disk
// storage is unavailable.
func (s *Store) Dir() string { return s.dir }

// BaseURL is the public path prefix uploads are served under.
func (s *Store) BaseURL() string { return s.baseURL }

// Save validates and stores one image, returning its public URL.
func (s *Store) Save(mime string, data []byte) (string, error) {
	ext, ok := allowedTypes[strings.ToLower(strings.TrimSpace(mime))]
	if !ok {
		return "", ErrUnsupportedType
	}
	if int64(len(data)) > s.maxSize {
		return "", ErrTooLarge
	}

	if s.dir == "" {
		return dataURL(mime, data), nil
	}
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		s.log.Warn("disk write failed, returning data url", zap.Error(err))
		return dataURL(mime, data), nil
	}
	return s.baseURL + "/" + name, nil
}

// Issued reports whether ref is a URL this store handed out, i.e. a
// local path under its base URL with disk storage available.
func (s *Store) Issued(ref string) bool {
	return s != nil && s.dir != "" && strings.HasPrefix(ref, s.baseURL+"/")
}

// ReadRef loads back the bytes behind a URL previously returned by Save.
func (s *Store) ReadRef(ref string) ([]byte, error) {
	if !s.Issued(ref) {
		return nil, fmt.Errorf("ref %q was not issued by this store", ref)
	}
	name := filepath.Base(strings.TrimPrefix(ref, s.baseURL+"/"))
	return os.ReadFile(filepath.Join(s.dir, name))
}

func dataURL(mime string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
