package rules

import (
	"fmt"
	"strings"

	"regexp"
)

var (
	emailDomainRe = regexp.MustCompile(`\b[\w.-]+@([\w.-]+\.\w+)\b`)
	urlDomainRe   = regexp.MustCompile(`https?://([\w.-]+\.\w+)`)
	bareDomainRe  = regexp.MustCompile(`\b([\w-]+\.(?:com|org|net|edu|gov|mil|int|co\.in|in|us|uk|ca|au|de|fr|jp|cn|ru|br|mx|es|it|nl|se|no|dk|fi|pl|cz|hu|ro|bg|hr|si|sk|lt|lv|ee|gr|pt|ie|at|ch|be|lu|is|mt|cy|tk|ml|ga|cf|gq|xyz|top|click|download|stream|science|date|faith|accountant|loan|win|cricket|review|trade|racing|party|bid|country))\b`)
)

// extractDomains pulls candidate domains out of a contact string via
// three independent passes (email address, URL, bare domain in text)
// and deduplicates the result. Order of first appearance is kept.
func extractDomains(contact string) []string {
	if contact == "" {
		return nil
	}
	lower := strings.ToLower(contact)

	var domains []string
	seen := make(map[string]struct{})
	add := func(matches [][]string) {
		for _, m := range matches {
			d := m[1]
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			domains = append(domains, d)
		}
	}

	add(emailDomainRe.FindAllStringSubmatch(lower, -1))
	add(urlDomainRe.FindAllStringSubmatch(lower, -1))
	add(bareDomainRe.FindAllStringSubmatch(lower, -1))

	return domains
}

// CheckContactDomains inspects every domain found in the contact string
// for suspicious characteristics. The four checks are independent: one
// domain may trigger several findings. No network lookups happen here —
// verification must work offline.
func (r *Ruleset) CheckContactDomains(contact string) Findings {
	var out Findings

	for _, domain := range extractDomains(contact) {
		if _, free := r.FreeEmailDomains[domain]; free {
			out.Add(Info("free_email_domain",
				fmt.Sprintf("Use of free email domain: %s", domain)))
		}

		for _, tld := range r.SuspiciousTLDs {
			if strings.HasSuffix(domain, tld) {
				out.Add(Info("suspicious_tld",
					fmt.Sprintf("Suspicious domain extension: %s", domain)))
				break
			}
		}

		for _, kw := range r.SuspiciousDomainKeywords {
			if strings.Contains(domain, kw) {
				out.Add(Info("suspicious_domain_keywords",
					fmt.Sprintf("Suspicious domain with job-related keywords: %s", domain)))
				break
			}
		}

		if label, _, ok := strings.Cut(domain, "."); ok && len(label) < 4 {
			out.Add(Info("short_domain",
				fmt.Sprintf("Suspiciously short domain name: %s", domain)))
		}
	}

	return out
}
