package aigen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Local is the offline review generator. It composes a plausible review
// from the survey answers alone and never fails, so it backs every
// Gemini outage and unconfigured deployment.
type Local struct{}

func (Local) GenerateReview(_ context.Context, in ReviewInput) (string, string, error) {
	rating := 4
	goodPoints := []string{}
	for _, q := range in.Questions {
		answer, ok := findAnswer(in.Answers, q.ID)
		if !ok {
			continue
		}
		switch q.Type {
		case "rating":
			if n, ok := toInt(answer); ok {
				rating = n
			}
		case "multi_select":
			if items, ok := answer.([]any); ok {
				for _, item := range items {
					goodPoints = append(goodPoints, fmt.Sprintf("%v", item))
				}
			}
		}
	}

	satisfaction := satisfactionText(rating)
	pointsText := ""
	if len(goodPoints) > 0 {
		pointsText = fmt.Sprintf("特に%sが素晴らしかったです。", strings.Join(goodPoints, "と"))
	}
	commentText := ""
	if in.FreeComment != "" {
		commentText = fmt.Sprintf("%sという点も印象的でした。", in.FreeComment)
	}

	templates := []string{
		fmt.Sprintf("%sを利用しました。%s%s%s%sに興味がある方にぜひおすすめです。",
			in.ServiceName, satisfaction, pointsText, commentText, in.WhatYouDo),
		fmt.Sprintf("初めて%sにお世話になりました。%s%s%sまた利用したいと思います。",
			in.ServiceName, satisfaction, pointsText, commentText),
		fmt.Sprintf("%sの%sを体験しました。%s%s%s友人にも紹介したいと思えるサービスでした。",
			in.ServiceName, in.WhatYouDo, satisfaction, pointsText, commentText),
	}
	return templates[rand.IntN(len(templates))], SourceLocal, nil
}

func satisfactionText(rating int) string {
	switch {
	case rating >= 5:
		return "非常に満足しています。期待以上の体験でした。"
	case rating >= 4:
		return "とても満足しています。丁寧な対応が好印象でした。"
	case rating >= 3:
		return "全体的に良い体験でした。"
	default:
		return "サービスを受けることができました。"
	}
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}
