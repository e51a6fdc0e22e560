package raster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/golang/freetype/truetype"
	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

// FontSource loads the poster font from the configured local path,
// falling back to a remote fetch when the file is missing. The parsed
// font is cached across renders; faces are built per size on demand.
type FontSource struct {
	path        string
	fallbackURL string
	http        *retryablehttp.Client
	log         *zap.Logger

	mu     sync.Mutex
	cached *truetype.Font
}

func NewFontSource(path, fallbackURL string, log *zap.Logger) *FontSource {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.HTTPClient.Timeout = 15 * time.Second
	client.Logger = nil
	return &FontSource{
		path:        path,
		fallbackURL: fallbackURL,
		http:        client,
		log:         log.Named("raster.fonts"),
	}
}

// Face returns a font face at the given pixel size.
func (f *FontSource) Face(size float64) (font.Face, error) {
	parsed, err := f.load()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: size}), nil
}

func (f *FontSource) load() (*truetype.Font, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cached != nil {
		return f.cached, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, failure("font", err)
		}
		f.log.Warn("local font missing, fetching fallback",
			zap.String("path", f.path),
			zap.String("url", f.fallbackURL),
		)
		data, err = f.fetchRemote()
		if err != nil {
			return nil, failure("font", err)
		}
	}

	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, failure("font", err)
	}
	f.cached = parsed
	return parsed, nil
}

func (f *FontSource) fetchRemote() ([]byte, error) {
	if f.fallbackURL == "" {
		return nil, errors.New("no font fallback url configured")
	}
	resp, err := f.http.Get(f.fallbackURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("font fetch returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
