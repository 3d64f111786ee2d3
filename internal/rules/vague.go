package rules

import (
	"strings"

	"jobshield/verify-service/internal/posting"
)

// CheckUrgency rates pressure-tactic language on the basic path.
func (r *Ruleset) CheckUrgency(combined string) Findings {
	var out Findings

	text := strings.ToLower(combined)
	count := 0
	for _, kw := range r.UrgencyKeywords {
		if strings.Contains(text, kw) {
			count++
		}
	}

	switch {
	case count >= 3:
		out.Add(Info("high_urgency", "Multiple urgency indicators suggest pressure tactics"))
	case count >= 1:
		out.Add(Info("urgency_present", "Urgency language may indicate rushed hiring process"))
	}
	return out
}

// CheckVagueness rates how non-specific the title and description are.
func (r *Ruleset) CheckVagueness(p posting.Posting) Findings {
	var out Findings

	title := strings.ToLower(p.JobTitle)
	desc := strings.ToLower(p.JobDescription)

	count := 0
	for _, term := range r.VagueTerms {
		if strings.Contains(title, term) || strings.Contains(desc, term) {
			count++
		}
	}

	switch {
	case count >= 2:
		out.Add(Info("highly_vague", "Job description contains multiple vague terms"))
	case count >= 1:
		out.Add(Info("somewhat_vague", "Job description contains vague terminology"))
	}
	return out
}

// CheckPostingFields runs the structural checks that look at individual
// posting fields rather than the combined text: company identity,
// remote consistency, response-time claims and applicant-fee mentions.
func (r *Ruleset) CheckPostingFields(p posting.Posting) Findings {
	var out Findings

	if name := strings.TrimSpace(p.CompanyName); len(name) < 3 {
		out.Add(Info("missing_company_info",
			"Missing or insufficient company information"))
	}

	if strings.Contains(strings.ToLower(p.RemoteStatus), "remote") &&
		strings.TrimSpace(p.JobLocation) == "" {
		out.Add(Info("remote_no_location",
			"Remote job without company location specified"))
	}

	if containsAny(strings.ToLower(p.ResponseTimeClaimed), r.ResponseTimeTerms) {
		out.Add(Critical("unrealistic_response_time",
			"Unrealistically quick response time promised"))
	}

	if containsAny(strings.ToLower(p.CombinedText()), r.PaymentKeywords) {
		out.Add(Critical("payment_request",
			"Job posting mentions payment or fees from applicants"))
	}

	return out
}
