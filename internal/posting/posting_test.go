package posting_test

import (
	"reflect"
	"testing"

	"jobshield/verify-service/internal/posting"
)

// ── FromForm ───────────────────────────────────────────────────────────────

func TestFromForm(t *testing.T) {
	p := posting.FromForm(map[string]string{
		"job_title":                  "  Backend Engineer ",
		"job_description":            "Build APIs",
		"company_name":               "Acme",
		"relocation_assistance":      "true",
		"stock_options":              "false",
		"number_of_positions":        "3",
		"attachments":                "jd.pdf, benefits.pdf",
		"company_social_media_links": "https://a.example, https://b.example",
	})

	if p.JobTitle != "Backend Engineer" {
		t.Errorf("JobTitle = %q, want trimmed value", p.JobTitle)
	}
	if !p.RelocationAssistance || p.StockOptions {
		t.Errorf("bools parsed wrong: relocation=%v stock=%v", p.RelocationAssistance, p.StockOptions)
	}
	if p.NumberOfPositions != 3 {
		t.Errorf("NumberOfPositions = %d, want 3", p.NumberOfPositions)
	}
	if want := []string{"jd.pdf", "benefits.pdf"}; !reflect.DeepEqual(p.Attachments, want) {
		t.Errorf("Attachments = %v, want %v", p.Attachments, want)
	}
	if len(p.CompanySocialMediaLinks) != 2 {
		t.Errorf("CompanySocialMediaLinks = %v, want 2 entries", p.CompanySocialMediaLinks)
	}
}

// Malformed values are treated as absent, never rejected.
func TestFromForm_MalformedValues(t *testing.T) {
	p := posting.FromForm(map[string]string{
		"relocation_assistance": "yes please",
		"number_of_positions":   "many",
	})
	if p.RelocationAssistance {
		t.Error("malformed bool parsed as true")
	}
	if p.NumberOfPositions != 0 {
		t.Errorf("NumberOfPositions = %d, want 0", p.NumberOfPositions)
	}
}

func TestFromForm_Empty(t *testing.T) {
	p := posting.FromForm(map[string]string{})
	if !reflect.DeepEqual(p, posting.Posting{}) {
		t.Errorf("empty form produced non-zero posting: %+v", p)
	}
}

// ── CombinedText / Contact ─────────────────────────────────────────────────

func TestCombinedText(t *testing.T) {
	p := posting.Posting{
		JobTitle:       "Title",
		JobDescription: "Desc",
		Requirements:   "Reqs",
		Benefits:       "Perks",
	}
	if got := p.CombinedText(); got != "Title Desc Reqs Perks" {
		t.Errorf("CombinedText() = %q", got)
	}
}

func TestContact_Fallback(t *testing.T) {
	p := posting.Posting{
		ApplicationLinkOrEmail: "hr@example.com",
		CompanyWebsite:         "https://example.com",
	}
	if got := p.Contact(); got != "hr@example.com" {
		t.Errorf("Contact() = %q, want the application email", got)
	}

	p.ApplicationLinkOrEmail = ""
	if got := p.Contact(); got != "https://example.com" {
		t.Errorf("Contact() = %q, want the website fallback", got)
	}
}
