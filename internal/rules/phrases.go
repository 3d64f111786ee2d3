package rules

import (
	"fmt"
	"strings"
)

// phraseTag builds the stable symbolic tag for a matched phrase.
func phraseTag(prefix, phrase string) string {
	phrase = strings.ReplaceAll(phrase, " ", "_")
	phrase = strings.ReplaceAll(phrase, "/", "_")
	return prefix + phrase
}

// CheckScamPhrases scans the combined posting text for the full phrase
// and keyword tables, plus tone and quality signals: exclamation
// density, capitalization ratio, repeated words and known-fake phone
// numbers. Pure function of the input; empty text yields no findings.
func (r *Ruleset) CheckScamPhrases(combined string) Findings {
	var out Findings

	if strings.TrimSpace(combined) == "" {
		return out
	}

	text := cleanText(combined)

	for _, rule := range r.ScamKeywords {
		if strings.Contains(text, rule.Phrase) {
			out.Add(Critical(phraseTag("scam_keyword_", rule.Phrase),
				fmt.Sprintf("Detected scam keyword: %q. %s", rule.Phrase, rule.Reason)))
		}
	}

	for _, rule := range r.ScamPhrases {
		if strings.Contains(text, rule.Phrase) {
			out.Add(Info(phraseTag("suspicious_phrase_", rule.Phrase),
				fmt.Sprintf("Found suspicious phrase: %q. %s", rule.Phrase, rule.Reason)))
		}
	}

	if n := strings.Count(combined, "!"); n > 5 {
		out.Add(Info("excessive_exclamation", fmt.Sprintf(
			"Excessive use of exclamation marks (%d) indicates unprofessional communication", n)))
	}

	if upperRatio(combined) > 0.3 {
		out.Add(Info("excessive_capitalization",
			"Excessive capitalization suggests unprofessional or spam content"))
	}

	for _, number := range r.FakeContactNumbers {
		if strings.Contains(text, number) {
			out.Add(Critical("fake_contact_numbers",
				"Detected potentially fake contact numbers"))
			break
		}
	}

	if repeated := repeatedWords(text); len(repeated) > 0 {
		out.Add(Info("excessive_word_repetition", fmt.Sprintf(
			"Excessive repetition of words: %s", strings.Join(repeated, ", "))))
	}

	return out
}

// CheckLegacyPhrases scans with the smaller legacy phrase table only.
// Used on the basic detection path where the prior verdict is already
// negative and findings serve as explanation.
func (r *Ruleset) CheckLegacyPhrases(combined string) Findings {
	var out Findings

	if strings.TrimSpace(combined) == "" {
		return out
	}

	text := cleanText(combined)
	for _, rule := range r.LegacyPhrases {
		if strings.Contains(text, rule.Phrase) {
			out.Add(Info(phraseTag("suspicious_phrase_", rule.Phrase),
				fmt.Sprintf("Found suspicious phrase: %q. %s", rule.Phrase, rule.Reason)))
		}
	}
	return out
}

// repeatedWords returns up to three words longer than three characters
// that appear more than five times, in order of first occurrence.
func repeatedWords(text string) []string {
	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(text) {
		if len(word) <= 3 {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	var repeated []string
	for _, word := range order {
		if counts[word] > 5 {
			repeated = append(repeated, word)
			if len(repeated) == 3 {
				break
			}
		}
	}
	return repeated
}
