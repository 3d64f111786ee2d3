package rules_test

import (
	"strings"
	"testing"

	"jobshield/verify-service/internal/rules"
)

func findingTags(fs rules.Findings) []string { return fs.Issues() }

func hasTag(fs rules.Findings, tag string) bool {
	for _, t := range fs.Issues() {
		if t == tag {
			return true
		}
	}
	return false
}

// ── CheckSalaryRange ───────────────────────────────────────────────────────

func TestCheckSalaryRange_EmptyIsNotPenalized(t *testing.T) {
	r := rules.DefaultRuleset()
	if fs := r.CheckSalaryRange("", "fresher"); fs.Len() != 0 {
		t.Errorf("empty salary produced findings: %v", findingTags(fs))
	}
	if fs := r.CheckSalaryRange("negotiable", "fresher"); fs.Len() != 0 {
		t.Errorf("non-numeric salary produced findings: %v", findingTags(fs))
	}
}

// Bounds are inclusive: exactly the fresher monthly maximum passes, one
// rupee more does not.
func TestCheckSalaryRange_MonthlyBoundary(t *testing.T) {
	r := rules.DefaultRuleset()

	if fs := r.CheckSalaryRange("50000 per month", "fresher"); fs.Len() != 0 {
		t.Errorf("salary at monthly max produced findings: %v", findingTags(fs))
	}

	fs := r.CheckSalaryRange("50001 per month", "fresher")
	if !hasTag(fs, "unrealistic_monthly_salary") {
		t.Errorf("salary above monthly max missing unrealistic_monthly_salary, got %v", findingTags(fs))
	}
	for _, f := range fs.List() {
		if f.Tag == "unrealistic_monthly_salary" && f.Severity != rules.SeverityCritical {
			t.Errorf("unrealistic_monthly_salary severity = %q, want critical", f.Severity)
		}
	}
}

func TestCheckSalaryRange_DailyTooHighForFresher(t *testing.T) {
	r := rules.DefaultRuleset()
	fs := r.CheckSalaryRange("5000 per day", "fresher")
	if !hasTag(fs, "unrealistic_daily_salary") {
		t.Errorf("₹5000/day for a fresher missing unrealistic_daily_salary, got %v", findingTags(fs))
	}
}

// The same amount is judged against the level the experience text
// implies: ₹5000/day is too high for a fresher but fine for mid-level.
func TestCheckSalaryRange_LevelDependent(t *testing.T) {
	r := rules.DefaultRuleset()
	if fs := r.CheckSalaryRange("5000 per day", "3 years"); fs.Len() != 0 {
		t.Errorf("₹5000/day for mid-level produced findings: %v", findingTags(fs))
	}
}

func TestCheckSalaryRange_LPA(t *testing.T) {
	r := rules.DefaultRuleset()

	if fs := r.CheckSalaryRange("6 LPA", "fresher"); fs.Len() != 0 {
		t.Errorf("6 LPA for fresher produced findings: %v", findingTags(fs))
	}

	fs := r.CheckSalaryRange("25 LPA", "fresher")
	if !hasTag(fs, "unrealistic_annual_salary") {
		t.Errorf("25 LPA for fresher missing unrealistic_annual_salary, got %v", findingTags(fs))
	}
}

// CTC values under 100 are read as LPA, larger ones as rupees.
func TestCheckSalaryRange_CTCUnits(t *testing.T) {
	r := rules.DefaultRuleset()

	fs := r.CheckSalaryRange("50 CTC", "fresher")
	if !hasTag(fs, "unrealistic_ctc") {
		t.Errorf("50 LPA CTC for fresher missing unrealistic_ctc, got %v", findingTags(fs))
	}

	if fs := r.CheckSalaryRange("CTC 400000", "fresher"); fs.Len() != 0 {
		t.Errorf("₹4,00,000 CTC for fresher produced findings: %v", findingTags(fs))
	}
}

// Without a period marker the magnitude picks the band, and an
// out-of-band value is flagged as unclear rather than unrealistic.
func TestCheckSalaryRange_NoPeriodMarker(t *testing.T) {
	r := rules.DefaultRuleset()

	fs := r.CheckSalaryRange("75", "fresher")
	if !hasTag(fs, "unclear_salary_range") {
		t.Errorf("ambiguous ₹75 missing unclear_salary_range, got %v", findingTags(fs))
	}
	for _, f := range fs.List() {
		if f.Tag == "unclear_salary_range" && f.Severity != rules.SeverityInformational {
			t.Errorf("unclear_salary_range severity = %q, want informational", f.Severity)
		}
	}

	if fs := r.CheckSalaryRange("30000", "fresher"); fs.Len() != 0 {
		t.Errorf("plausible bare amount produced findings: %v", findingTags(fs))
	}
}

func TestCheckSalaryRange_ReasonMentionsExpectedRange(t *testing.T) {
	r := rules.DefaultRuleset()
	fs := r.CheckSalaryRange("5 per month", "fresher")
	reasons := fs.Reasons()
	if len(reasons) != 1 {
		t.Fatalf("expected one finding, got %v", findingTags(fs))
	}
	if !strings.Contains(reasons[0], "15,000") || !strings.Contains(reasons[0], "50,000") {
		t.Errorf("reason should quote the expected range, got %q", reasons[0])
	}
}
