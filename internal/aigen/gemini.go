package aigen

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/smallbiznis/voicepost/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Gemini calls the Google generative AI API for review text and poster
// images. Nil when no API key is configured.
type Gemini struct {
	client     *genai.Client
	textModel  string
	imageModel string
	log        *zap.Logger
}

// NewGemini opens a Gemini client bound to the fx lifecycle, or returns
// nil when the API key is absent so callers fall back locally.
func NewGemini(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*Gemini, error) {
	if !cfg.GeminiConfigured() {
		log.Warn("gemini api key not configured, using local generation only")
		return nil, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return &Gemini{
		client:     client,
		textModel:  cfg.GeminiTextModel,
		imageModel: cfg.GeminiImageModel,
		log:        log.Named("aigen.gemini"),
	}, nil
}

func (g *Gemini) GenerateReview(ctx context.Context, in ReviewInput) (string, string, error) {
	if g == nil {
		return "", "", ErrNotConfigured
	}

	model := g.client.GenerativeModel(g.textModel)
	resp, err := model.GenerateContent(ctx, genai.Text(buildReviewPrompt(in)))
	if err != nil {
		return "", "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", "", ErrEmptyCandidates
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", "", ErrEmptyCandidates
	}
	return text, SourceGemini, nil
}

func (g *Gemini) GenerateImage(ctx context.Context, in ImageInput) ([]byte, string, error) {
	if g == nil {
		return nil, "", ErrNotConfigured
	}

	parts := []genai.Part{genai.Text(buildImagePrompt(in))}
	if len(in.FaceImage) > 0 {
		parts = append(parts, genai.ImageData(formatFromMIME(in.FaceMIME), in.FaceImage))
	}
	if len(in.LogoImage) > 0 {
		parts = append(parts, genai.ImageData(formatFromMIME(in.LogoMIME), in.LogoImage))
	}

	model := g.client.GenerativeModel(g.imageModel)
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, "", err
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if blob, ok := part.(genai.Blob); ok && strings.HasPrefix(blob.MIMEType, "image/") {
				return blob.Data, blob.MIMEType, nil
			}
		}
	}
	return nil, "", ErrNoImageInOutput
}

// formatFromMIME maps a MIME type to the bare format name ImageData wants.
func formatFromMIME(mime string) string {
	if f, ok := strings.CutPrefix(mime, "image/"); ok && f != "" {
		return f
	}
	return "png"
}
