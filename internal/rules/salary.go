package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var salaryNumberRe = regexp.MustCompile(`[\d,]+\.?\d*`)

// parseSalaryValues extracts every numeric token from the raw salary
// text as a candidate salary magnitude (commas stripped, decimals kept).
func parseSalaryValues(salaryInfo string) []float64 {
	if salaryInfo == "" {
		return nil
	}
	tokens := salaryNumberRe.FindAllString(cleanText(salaryInfo), -1)
	values := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

// Pay-period markers, scanned in priority order.
var (
	dailyTerms   = []string{"per day", "daily", "/day"}
	weeklyTerms  = []string{"per week", "weekly", "/week"}
	monthlyTerms = []string{"per month", "monthly", "/month", "pm"}
	hourlyTerms  = []string{"per hour", "hourly", "/hour", "/hr"}
	annualTerms  = []string{"lpa", "per annum", "annually", "yearly", "/year"}
	ctcTerms     = []string{"ctc", "cost to company"}
)

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// CheckSalaryRange validates every salary magnitude found in the raw
// salary text against the bounds for the experience level implied by the
// experience requirement. Absence of salary information is not
// penalized here.
func (r *Ruleset) CheckSalaryRange(salaryInfo, requiredExperience string) Findings {
	var out Findings

	if strings.TrimSpace(salaryInfo) == "" {
		return out
	}

	level := ClassifyExperience(requiredExperience)
	bounds := r.SalaryRanges[level]

	values := parseSalaryValues(salaryInfo)
	if len(values) == 0 {
		return out
	}

	text := cleanText(salaryInfo)

	for _, salary := range values {
		switch {
		case containsAny(text, dailyTerms):
			if salary < bounds.DailyMin || salary > bounds.DailyMax {
				out.Add(Critical("unrealistic_daily_salary", fmt.Sprintf(
					"Unrealistic daily salary: ₹%s for %s level (expected: ₹%s - ₹%s)",
					formatAmount(salary), level, formatAmount(bounds.DailyMin), formatAmount(bounds.DailyMax))))
			}
		case containsAny(text, weeklyTerms):
			if salary < bounds.WeeklyMin || salary > bounds.WeeklyMax {
				out.Add(Critical("unrealistic_weekly_salary", fmt.Sprintf(
					"Unrealistic weekly salary: ₹%s for %s level (expected: ₹%s - ₹%s)",
					formatAmount(salary), level, formatAmount(bounds.WeeklyMin), formatAmount(bounds.WeeklyMax))))
			}
		case containsAny(text, monthlyTerms):
			if salary < bounds.MonthlyMin || salary > bounds.MonthlyMax {
				out.Add(Critical("unrealistic_monthly_salary", fmt.Sprintf(
					"Unrealistic monthly salary: ₹%s for %s level (expected: ₹%s - ₹%s)",
					formatAmount(salary), level, formatAmount(bounds.MonthlyMin), formatAmount(bounds.MonthlyMax))))
			}
		case containsAny(text, hourlyTerms):
			if salary < bounds.HourlyMin || salary > bounds.HourlyMax {
				out.Add(Critical("unrealistic_hourly_salary", fmt.Sprintf(
					"Unrealistic hourly rate: ₹%s for %s level (expected: ₹%s - ₹%s)",
					formatAmount(salary), level, formatAmount(bounds.HourlyMin), formatAmount(bounds.HourlyMax))))
			}
		case containsAny(text, annualTerms):
			// LPA values stay in lakhs, everything else is rupees.
			if strings.Contains(text, "lpa") {
				if salary < bounds.CTCLPAMin || salary > bounds.CTCLPAMax {
					out.Add(Critical("unrealistic_annual_salary", fmt.Sprintf(
						"Unrealistic annual salary: %g LPA for %s level (expected: %g - %g LPA)",
						salary, level, bounds.CTCLPAMin, bounds.CTCLPAMax)))
				}
			} else if salary < bounds.AnnualMin || salary > bounds.AnnualMax {
				out.Add(Critical("unrealistic_annual_salary", fmt.Sprintf(
					"Unrealistic annual salary: ₹%s for %s level (expected: ₹%s - ₹%s)",
					formatAmount(salary), level, formatAmount(bounds.AnnualMin), formatAmount(bounds.AnnualMax))))
			}
		case containsAny(text, ctcTerms):
			// CTC below 100 is read as LPA, otherwise as rupees.
			if salary < 100 {
				if salary < bounds.CTCLPAMin || salary > bounds.CTCLPAMax {
					out.Add(Critical("unrealistic_ctc", fmt.Sprintf(
						"Unrealistic CTC: %g LPA for %s level (expected: %g - %g LPA)",
						salary, level, bounds.CTCLPAMin, bounds.CTCLPAMax)))
				}
			} else if salary < bounds.AnnualMin || salary > bounds.AnnualMax {
				out.Add(Critical("unrealistic_ctc", fmt.Sprintf(
					"Unrealistic CTC: ₹%s for %s level (expected: ₹%s - ₹%s)",
					formatAmount(salary), level, formatAmount(bounds.AnnualMin), formatAmount(bounds.AnnualMax))))
			}
		default:
			// No period marker — infer one from the magnitude and flag
			// out-of-band values as unclear rather than unrealistic.
			var lo, hi float64
			switch {
			case salary < 1000:
				lo, hi = bounds.HourlyMin, bounds.HourlyMax
			case salary < 10000:
				lo, hi = bounds.DailyMin, bounds.DailyMax
			case salary < 200000:
				lo, hi = bounds.MonthlyMin, bounds.MonthlyMax
			default:
				lo, hi = bounds.AnnualMin, bounds.AnnualMax
			}
			if salary < lo || salary > hi {
				out.Add(Info("unclear_salary_range", fmt.Sprintf(
					"Unclear salary specification: ₹%s (please specify time period)",
					formatAmount(salary))))
			}
		}
	}

	return out
}

// formatAmount renders a rupee amount with thousands separators.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
