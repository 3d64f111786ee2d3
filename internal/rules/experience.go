package rules

import (
	"regexp"
	"strconv"
	"strings"
)

// ExperienceLevel is the coarse seniority derived from the free-text
// experience requirement. It only parameterizes salary validation.
type ExperienceLevel string

const (
	LevelFresher ExperienceLevel = "fresher"
	LevelMid     ExperienceLevel = "mid_level"
	LevelSenior  ExperienceLevel = "senior"
)

var fresherKeywords = []string{
	"fresher", "entry", "graduate", "0 year", "no experience", "beginner", "trainee",
}

var seniorKeywords = []string{
	"senior", "lead", "manager", "director",
	"5+ year", "6+ year", "7+ year", "8+ year",
	"experienced", "expert",
}

var (
	yearsRangeRe  = regexp.MustCompile(`(\d+)\s*(?:to|-)\s*\d+\s*year`)
	yearsSingleRe = regexp.MustCompile(`(\d+)\s*year`)
)

// ClassifyExperience maps a free-text experience requirement to a level.
// Precedence is fixed: fresher keywords win over senior keywords, which
// win over numeric ranges, which win over single year mentions; with no
// signal at all the default is mid-level. Empty input means fresher.
// Total function — never fails.
func ClassifyExperience(requiredExperience string) ExperienceLevel {
	if strings.TrimSpace(requiredExperience) == "" {
		return LevelFresher
	}

	text := cleanText(requiredExperience)

	for _, kw := range fresherKeywords {
		if strings.Contains(text, kw) {
			return LevelFresher
		}
	}
	for _, kw := range seniorKeywords {
		if strings.Contains(text, kw) {
			return LevelSenior
		}
	}

	if m := yearsRangeRe.FindStringSubmatch(text); m != nil {
		return levelFromYears(m[1])
	}
	if m := yearsSingleRe.FindStringSubmatch(text); m != nil {
		return levelFromYears(m[1])
	}

	return LevelMid
}

func levelFromYears(digits string) ExperienceLevel {
	years, err := strconv.Atoi(digits)
	if err != nil {
		return LevelMid
	}
	switch {
	case years >= 5:
		return LevelSenior
	case years >= 2:
		return LevelMid
	default:
		return LevelFresher
	}
}
