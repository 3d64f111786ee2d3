package rules

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	specialsRe   = regexp.MustCompile(`[^\w\s.,!?@-]`)
)

// cleanText normalizes free text for matching: lowercase, special
// characters stripped (basic punctuation kept), whitespace collapsed.
// Empty input stays empty.
func cleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(strings.TrimSpace(text))
	text = specialsRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// upperRatio returns the fraction of characters in text that are
// uppercase letters, over all characters. Zero for empty text.
func upperRatio(text string) float64 {
	if len(text) == 0 {
		return 0
	}
	upper := 0
	total := 0
	for _, r := range text {
		total++
		if r >= 'A' && r <= 'Z' {
			upper++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(upper) / float64(total)
}
