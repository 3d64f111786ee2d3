package rules

import (
	"fmt"
	"strings"
)

// CheckRedFlagDensity counts red-flag vocabulary hits across five fixed
// categories and rates the concentration. At most one of the two density
// findings fires per call: the high threshold is checked first.
func (r *Ruleset) CheckRedFlagDensity(combined string) Findings {
	var out Findings

	text := cleanText(combined)

	categories := [][]string{
		r.UrgencyTerms,
		r.PaymentTerms,
		r.UnrealisticTerms,
		r.CommunicationTerms,
	}

	total := 0
	active := 0
	for _, terms := range categories {
		hits := 0
		for _, term := range terms {
			if strings.Contains(text, term) {
				hits++
			}
		}
		total += hits
		if hits > 0 {
			active++
		}
	}

	// Quality signals form the fifth category.
	quality := 0
	if strings.Count(combined, "!") > 3 {
		quality++
	}
	if upperRatio(combined) > 0.2 {
		quality++
	}
	total += quality
	if quality > 0 {
		active++
	}

	switch {
	case total >= 8 || active >= 4:
		out.Add(Critical("high_red_flag_density", fmt.Sprintf(
			"High concentration of red flags detected (Total: %d, Categories: %d)", total, active)))
	case total >= 5 || active >= 3:
		out.Add(Info("moderate_red_flag_density", fmt.Sprintf(
			"Moderate concentration of red flags detected (Total: %d, Categories: %d)", total, active)))
	}

	return out
}
