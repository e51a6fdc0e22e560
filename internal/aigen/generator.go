package aigen

import (
	"context"
	"errors"

	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
)

// Source labels for generated review text.
const (
	SourceGemini = "gemini"
	SourceLocal  = "local"
)

// ReviewInput carries everything the text generator needs for one review.
type ReviewInput struct {
	ServiceName string
	Description string
	WhatYouDo   string
	Questions   []businessdomain.Question
	Answers     []surveydomain.Answer
	FreeComment string
}

// ImageInput carries everything the image generator needs for one poster.
// Face and logo bytes are optional multimodal attachments.
type ImageInput struct {
	ServiceName string
	Description string
	WhatYouDo   string
	OwnerName   string
	ReviewText  string
	TemplateID  string
	Width       int
	Height      int
	HasFace     bool
	HasLogo     bool
	FaceImage   []byte
	FaceMIME    string
	LogoImage   []byte
	LogoMIME    string
}

// ReviewGenerator produces review text from survey answers. The returned
// source identifies which backend produced the text.
type ReviewGenerator interface {
	GenerateReview(ctx context.Context, in ReviewInput) (text, source string, err error)
}

// ImageGenerator produces a finished poster image.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, in ImageInput) (data []byte, mime string, err error)
}

var (
	ErrNotConfigured   = errors.New("ai_not_configured")
	ErrEmptyCandidates = errors.New("ai_empty_response")
	ErrNoImageInOutput = errors.New("ai_no_image_in_response")
)
