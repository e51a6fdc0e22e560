package raster

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"
	"time"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"github.com/smallbiznis/voicepost/internal/assets"
	"github.com/smallbiznis/voicepost/internal/cache"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

const assetTTL = 10 * time.Minute

// AssetFetcher resolves face and logo refs to decoded images. Refs may be
// data URLs, absolute http(s) URLs, or local file paths served by the
// upload store. Decoded images are cached briefly to keep repeated
// renders of the same business cheap.
type AssetFetcher struct {
	http  *retryablehttp.Client
	store *assets.Store
	cache *cache.TTLCache[string, image.Image]
	log   *zap.Logger
}

func NewAssetFetcher(store *assets.Store, log *zap.Logger) *AssetFetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil
	return &AssetFetcher{
		http:  client,
		store: store,
		cache: cache.NewTTLCache[string, image.Image](),
		log:   log.Named("raster.assets"),
	}
}

// Fetch resolves one ref. A failed fetch returns an error; callers decide
// whether the asset is optional.
func (a *AssetFetcher) Fetch(ctx context.Context, ref string) (image.Image, error) {
	if img, ok := a.cache.Get(ref); ok {
		return img, nil
	}

	data, err := a.fetchBytes(ctx, ref)
	if err != nil {
		return nil, failure("asset", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, failure("asset", err)
	}
	a.cache.Set(ref, img, assetTTL)
	return img, nil
}

// FetchBytes returns the raw encoded bytes and MIME type of one ref, for
// handing assets to the multimodal image generator.
func (a *AssetFetcher) FetchBytes(ctx context.Context, ref string) ([]byte, string, error) {
	data, err := a.fetchBytes(ctx, ref)
	if err != nil {
		return nil, "", err
	}
	mime := "image/png"
	if strings.HasPrefix(ref, "data:") {
		if end := strings.Index(ref, ";"); end > 5 {
			mime = ref[5:end]
		}
	} else {
		_, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err == nil {
			mime = "image/" + format
		}
	}
	return data, mime, nil
}

func (a *AssetFetcher) fetchBytes(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case strings.HasPrefix(ref, "data:"):
		idx := strings.Index(ref, "base64,")
		if idx < 0 {
			return nil, fmt.Errorf("unsupported data url encoding")
		}
		return base64.StdEncoding.DecodeString(ref[idx+len("base64,"):])
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		req, err := retryablehttp.NewRequestWithContext(ctx, "GET", ref, nil)
		if err != nil {
			return nil, err
		}
		resp, err := a.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != 200 {
			return nil, fmt.Errorf("asset fetch returned status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	case a.store.Issued(ref):
		return a.store.ReadRef(ref)
	default:
		return nil, fmt.Errorf("unsupported asset ref %q", ref)
	}
}
