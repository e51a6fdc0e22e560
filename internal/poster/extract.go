package poster

import (
	"regexp"
	"strings"
)

// ReviewContent is the derived text surface of a poster: the raw review
// plus the catch copy and the highlight split. Highlight+Remainder always
// reassemble to ReviewText exactly.
type ReviewContent struct {
	ReviewText string
	CatchCopy  string
	Highlight  string
	Remainder  string
}

// DeriveContent runs the full extraction over one review text.
func DeriveContent(reviewText string) ReviewContent {
	highlight, remainder := SplitHighlight(reviewText)
	return ReviewContent{
		ReviewText: reviewText,
		CatchCopy:  CatchCopy(reviewText),
		Highlight:  highlight,
		Remainder:  remainder,
	}
}

type catchRule struct {
	trigger *regexp.Regexp
	capture *regexp.Regexp // optional noun-phrase capture
	suffix  string         // appended to the capture
	phrase  string         // fixed copy when no capture is configured
}

// Rules are ordered; the first rule whose trigger matches wins, except
// that a rule with a capture that fails to bind falls through to the
// next rule.
var catchRules = []catchRule{
	{
		trigger: regexp.MustCompile(`嘘のよう|信じられ|驚|びっくり`),
		capture: regexp.MustCompile(`(.{2,8})(が|は)(嘘のよう|信じられ)`),
		suffix:  "が、嘘みたい。",
	},
	{
		trigger: regexp.MustCompile(`楽にな|軽くな|消え|なくな|取れ`),
		capture: regexp.MustCompile(`(.{2,8})(が|は)(楽にな|軽くな|消え|なくな|取れ)`),
		suffix:  "が、消えた。",
	},
	{trigger: regexp.MustCompile(`丁寧|親切|優しい|寄り添`), phrase: "任せて、安心。"},
	{trigger: regexp.MustCompile(`説明|わかりやすい|納得`), phrase: "納得できる、説明。"},
	{trigger: regexp.MustCompile(`また|リピート|通い|次も`), phrase: "また、来たくなる。"},
	{trigger: regexp.MustCompile(`おすすめ|紹介|勧め`), phrase: "人に勧めたい。"},
	{trigger: regexp.MustCompile(`最高|素晴らし|満足|感動`), phrase: "期待を、超えた。"},
	{trigger: regexp.MustCompile(`ありがと|感謝`), phrase: "出会えて、よかった。"},
}

// CatchCopy distills a short poster headline from a review. Keyword rules
// run in priority order; when none bind, the leading sentence (or its
// first 12 runes) is used so the result is never empty.
func CatchCopy(reviewText string) string {
	for _, rule := range catchRules {
		if !rule.trigger.MatchString(reviewText) {
			continue
		}
		if rule.capture != nil {
			if m := rule.capture.FindStringSubmatch(reviewText); m != nil {
				return m[1] + rule.suffix
			}
			continue
		}
		return rule.phrase
	}

	head := reviewText
	if idx := strings.IndexAny(reviewText, "。！!"); idx >= 0 {
		head = reviewText[:idx]
	}
	runes := []rune(head)
	if len(runes) <= 15 {
		return head + "。"
	}
	return string(runes[:12]) + "..."
}

// SplitHighlight separates the review into an emphasised opening clause
// and the remaining body. The first clause boundary (。！、!) that yields
// an 8–30 rune clause wins; failing that, texts over 20 runes split after
// the 20th rune, and short texts are highlighted whole.
func SplitHighlight(reviewText string) (highlight, remainder string) {
	runes := []rune(reviewText)
	for i, r := range runes {
		if i >= 30 {
			break
		}
		if r == '。' || r == '！' || r == '、' || r == '!' {
			n := i + 1
			if n >= 8 && n <= 30 {
				return string(runes[:n]), string(runes[n:])
			}
		}
	}
	if len(runes) > 20 {
		return string(runes[:20]), string(runes[20:])
	}
	return reviewText, ""
}
