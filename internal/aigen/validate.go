package aigen

import "regexp"

// Validation flags personal information the generated text should never
// contain. These are heuristics, surfaced to the reviewer for a manual
// check rather than enforced automatically.
type Validation struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

var (
	phonePattern   = regexp.MustCompile(`\d{2,4}[-\s]?\d{2,4}[-\s]?\d{3,4}`)
	emailPattern   = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	addressPattern = regexp.MustCompile(`[都道府県市区町村]\d`)
)

// ValidateReviewText scans one review for suspected phone numbers, mail
// addresses, or postal addresses.
func ValidateReviewText(text string) Validation {
	issues := []string{}
	if phonePattern.MatchString(text) {
		issues = append(issues, "電話番号が含まれている可能性があります")
	}
	if emailPattern.MatchString(text) {
		issues = append(issues, "メールアドレスが含まれている可能性があります")
	}
	if addressPattern.MatchString(text) {
		issues = append(issues, "住所が含まれている可能性があります")
	}
	return Validation{Valid: len(issues) == 0, Issues: issues}
}
