package rules_test

import (
	"testing"

	"jobshield/verify-service/internal/posting"
	"jobshield/verify-service/internal/rules"
)

// ── CheckUrgency ───────────────────────────────────────────────────────────

func TestCheckUrgency(t *testing.T) {
	r := rules.DefaultRuleset()

	if fs := r.CheckUrgency("Backend developer position in Chennai"); fs.Len() != 0 {
		t.Errorf("calm text produced urgency findings: %v", findingTags(fs))
	}

	fs := r.CheckUrgency("urgent opening, apply now before the offer expires")
	if !hasTag(fs, "high_urgency") {
		t.Errorf("three urgency keywords missing high_urgency, got %v", findingTags(fs))
	}

	fs = r.CheckUrgency("please apply now")
	if !hasTag(fs, "urgency_present") {
		t.Errorf("one urgency keyword missing urgency_present, got %v", findingTags(fs))
	}
	if hasTag(fs, "high_urgency") {
		t.Errorf("one keyword wrongly rated high_urgency: %v", findingTags(fs))
	}
}

// ── CheckVagueness ─────────────────────────────────────────────────────────

func TestCheckVagueness(t *testing.T) {
	r := rules.DefaultRuleset()

	p := posting.Posting{
		JobTitle:       "Work From Home Online Job",
		JobDescription: "Flexible work with passive income potential.",
	}
	fs := r.CheckVagueness(p)
	if !hasTag(fs, "highly_vague") {
		t.Errorf("multiple vague terms missing highly_vague, got %v", findingTags(fs))
	}

	p = posting.Posting{
		JobTitle:       "Site Reliability Engineer",
		JobDescription: "Operate our Kubernetes clusters, flexible work hours.",
	}
	fs = r.CheckVagueness(p)
	if !hasTag(fs, "somewhat_vague") {
		t.Errorf("single vague term missing somewhat_vague, got %v", findingTags(fs))
	}

	p = posting.Posting{
		JobTitle:       "Accountant",
		JobDescription: "Prepare quarterly statements for our Mumbai office.",
	}
	if fs := r.CheckVagueness(p); fs.Len() != 0 {
		t.Errorf("specific posting produced vagueness findings: %v", findingTags(fs))
	}
}

// ── CheckPostingFields ─────────────────────────────────────────────────────

func TestCheckPostingFields_MissingCompany(t *testing.T) {
	r := rules.DefaultRuleset()
	fs := r.CheckPostingFields(posting.Posting{CompanyName: "ab"})
	if !hasTag(fs, "missing_company_info") {
		t.Errorf("two-character company name missing missing_company_info, got %v", findingTags(fs))
	}

	fs = r.CheckPostingFields(posting.Posting{CompanyName: "Tata Consultancy Services"})
	if hasTag(fs, "missing_company_info") {
		t.Errorf("real company name flagged: %v", findingTags(fs))
	}
}

func TestCheckPostingFields_RemoteWithoutLocation(t *testing.T) {
	r := rules.DefaultRuleset()

	fs := r.CheckPostingFields(posting.Posting{
		CompanyName:  "Example Labs",
		RemoteStatus: "Fully Remote",
	})
	if !hasTag(fs, "remote_no_location") {
		t.Errorf("remote posting without location missing remote_no_location, got %v", findingTags(fs))
	}

	fs = r.CheckPostingFields(posting.Posting{
		CompanyName:  "Example Labs",
		RemoteStatus: "Remote",
		JobLocation:  "Hyderabad",
	})
	if hasTag(fs, "remote_no_location") {
		t.Errorf("remote posting with location flagged: %v", findingTags(fs))
	}
}

func TestCheckPostingFields_ResponseTimeIsCritical(t *testing.T) {
	r := rules.DefaultRuleset()
	fs := r.CheckPostingFields(posting.Posting{
		CompanyName:         "Example Labs",
		ResponseTimeClaimed: "instant reply within 24 hours",
	})
	if !hasTag(fs, "unrealistic_response_time") {
		t.Fatalf("missing unrealistic_response_time, got %v", findingTags(fs))
	}
	for _, f := range fs.List() {
		if f.Tag == "unrealistic_response_time" && f.Severity != rules.SeverityCritical {
			t.Errorf("unrealistic_response_time severity = %q, want critical", f.Severity)
		}
	}
}

func TestCheckPostingFields_PaymentRequest(t *testing.T) {
	r := rules.DefaultRuleset()
	fs := r.CheckPostingFields(posting.Posting{
		CompanyName:    "Example Labs",
		JobDescription: "A small registration fee is collected before onboarding.",
	})
	if !hasTag(fs, "payment_request") {
		t.Fatalf("missing payment_request, got %v", findingTags(fs))
	}
	for _, f := range fs.List() {
		if f.Tag == "payment_request" && f.Severity != rules.SeverityCritical {
			t.Errorf("payment_request severity = %q, want critical", f.Severity)
		}
	}
}

// ── Findings collection ────────────────────────────────────────────────────

func TestFindings_DedupAndOrder(t *testing.T) {
	var fs rules.Findings
	fs.Add(rules.Info("a", "first"))
	fs.Add(rules.Critical("b", "second"))
	fs.Add(rules.Info("a", "later duplicate"))

	if fs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", fs.Len())
	}
	if got := fs.Issues(); got[0] != "a" || got[1] != "b" {
		t.Errorf("Issues() = %v, want [a b]", got)
	}
	if got := fs.Reasons(); got[0] != "first" {
		t.Errorf("duplicate tag replaced the original reason: %v", got)
	}
	if fs.CriticalCount() != 1 {
		t.Errorf("CriticalCount() = %d, want 1", fs.CriticalCount())
	}
}

func TestFindings_MergeKeepsPairing(t *testing.T) {
	var a, b rules.Findings
	a.Add(rules.Info("x", "reason x"))
	b.Add(rules.Info("y", "reason y"))
	b.Add(rules.Info("x", "other reason"))

	a.Merge(b)

	issues := a.Issues()
	reasons := a.Reasons()
	if len(issues) != len(reasons) {
		t.Fatalf("issues (%d) and reasons (%d) diverged", len(issues), len(reasons))
	}
	want := map[string]string{"x": "reason x", "y": "reason y"}
	for i, tag := range issues {
		if reasons[i] != want[tag] {
			t.Errorf("tag %q paired with %q, want %q", tag, reasons[i], want[tag])
		}
	}
}
