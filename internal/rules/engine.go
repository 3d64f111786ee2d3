package rules

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"jobshield/verify-service/internal/posting"
)

// Result is the outcome of one verification run. Constructed once per
// posting and immutable afterwards; DisplayFindings is the curated copy
// used for rendering, Findings the complete evidence list.
type Result struct {
	FinalLabel      Label           `json:"final_label"`
	ModelLabel      Label           `json:"model_label"`
	OverrideApplied bool            `json:"override_applied"`
	Findings        []Finding       `json:"findings"`
	DisplayFindings []Finding       `json:"display_findings"`
	Issues          []string        `json:"issues"`
	Reasons         []string        `json:"reasons"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	TotalIssues     int             `json:"total_issues_count"`
	CriticalIssues  int             `json:"critical_issues_count"`
	ConfidenceScore int             `json:"confidence_score"`
	DisplayScore    int             `json:"display_score"`
}

// Engine combines the signal extractors into a verdict. All rule tables
// are injected at construction and never change afterwards, so one
// Engine is safe to share across requests.
type Engine struct {
	rules *Ruleset
	spell SpellChecker

	mu  sync.Mutex
	rng *rand.Rand // curation and display variance only, never decisions
}

// NewEngine builds an Engine. spell may be nil, in which case spelling
// checks are skipped. rng may be nil for a time-seeded source; tests
// pass a fixed seed to make curation and display scores reproducible.
func NewEngine(rules *Ruleset, spell SpellChecker, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rules: rules, spell: spell, rng: rng}
}

// Verify runs the decision state machine for one posting given the
// statistical classifier's prior label.
//
// A Fake prior is final: the basic detector set runs purely to collect
// explanations. A Real prior runs the enhanced detector set and may be
// overridden to Fake; the override is one-directional. If the enhanced
// path fails for any reason the engine falls back to the basic set and
// the prior label stands — verification never returns an error.
func (e *Engine) Verify(p posting.Posting, prior Label) Result {
	res := Result{
		ModelLabel:      prior,
		FinalLabel:      prior,
		ExperienceLevel: ClassifyExperience(p.RequiredExperience),
	}

	if prior == LabelFake {
		fs := e.basicDetect(p)
		res.Findings = fs.List()
		res.TotalIssues = fs.Len()
	} else {
		fs, baseScam, ok := e.enhancedDetect(p)
		if !ok {
			fs = e.basicDetect(p)
			res.Findings = fs.List()
			res.TotalIssues = fs.Len()
		} else {
			res.Findings = fs.List()
			res.TotalIssues = fs.Len()
			res.CriticalIssues = fs.CriticalCount()
			res.ConfidenceScore = confidenceScore(res.CriticalIssues, res.TotalIssues)

			if res.CriticalIssues >= 2 || res.TotalIssues >= 5 || baseScam {
				res.FinalLabel = LabelFake
				res.OverrideApplied = true
				log.Printf("[verify] classifier verdict overridden for %q: critical=%d total=%d",
					p.JobTitle, res.CriticalIssues, res.TotalIssues)
			}
		}
	}

	res.DisplayFindings = e.curate(res.FinalLabel, res.Findings)
	res.DisplayScore = e.displayScore(res.FinalLabel, res.TotalIssues, res.CriticalIssues)

	// Parallel projections of the curated list, pairing intact.
	res.Issues = make([]string, len(res.DisplayFindings))
	res.Reasons = make([]string, len(res.DisplayFindings))
	for i, f := range res.DisplayFindings {
		res.Issues[i] = f.Tag
		res.Reasons[i] = f.Reason
	}
	return res
}

// basicDetect is the legacy detector set: smaller phrase table plus
// urgency, vagueness, salary, domain and field checks.
func (e *Engine) basicDetect(p posting.Posting) Findings {
	combined := p.CombinedText()

	var fs Findings
	fs.Merge(e.rules.CheckLegacyPhrases(combined))
	fs.Merge(e.rules.CheckUrgency(combined))
	fs.Merge(e.rules.CheckVagueness(p))
	fs.Merge(e.rules.CheckSalaryRange(p.SalaryInfoRaw, p.RequiredExperience))
	fs.Merge(e.rules.CheckContactDomains(p.Contact()))
	fs.Merge(e.rules.CheckPostingFields(p))
	return fs
}

// enhancedDetect runs the full detector set. The embedded core pass
// (full phrase tables, domains, salary, field checks) also yields the
// base scam flag: three or more distinct core findings. A panic in any
// detector is recovered and reported as ok=false.
func (e *Engine) enhancedDetect(p posting.Posting) (fs Findings, baseScam, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[verify] enhanced detection failed: %v — falling back to basic checks", r)
			fs, baseScam, ok = Findings{}, false, false
		}
	}()

	combined := p.CombinedText()

	var core Findings
	core.Merge(e.rules.CheckContactDomains(p.Contact()))
	core.Merge(e.rules.CheckScamPhrases(combined))
	core.Merge(e.rules.CheckSalaryRange(p.SalaryInfoRaw, p.RequiredExperience))
	core.Merge(e.rules.CheckPostingFields(p))
	baseScam = core.Len() >= 3

	fs = core
	fs.Merge(e.rules.CheckWritingQuality(combined, e.spell))
	fs.Merge(e.rules.CheckRedFlagDensity(combined))
	return fs, baseScam, true
}

// confidenceScore weighs critical findings heavier than the total.
func confidenceScore(critical, total int) int {
	score := critical*35 + total*15
	if score > 100 {
		score = 100
	}
	return score
}

// curate limits the findings shown for a Real verdict: with more than
// two findings only one or two randomly chosen pairs are displayed, so
// a positive result is not buried in caveats. Fake verdicts always show
// everything. The input slice is never mutated.
func (e *Engine) curate(final Label, findings []Finding) []Finding {
	if final != LabelReal || len(findings) <= 2 {
		out := make([]Finding, len(findings))
		copy(out, findings)
		return out
	}

	e.mu.Lock()
	n := 1 + e.rng.Intn(2)
	perm := e.rng.Perm(len(findings))
	e.mu.Unlock()

	out := make([]Finding, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, findings[idx])
	}
	return out
}

// displayScore is the cosmetic 0-100 trust score shown to the user. It
// feeds no decision; with zero findings it is deliberately randomized.
func (e *Engine) displayScore(final Label, total, critical int) int {
	if total > 0 {
		if final == LabelFake {
			if critical >= 2 {
				return maxInt(5, 95-critical*15-total*8)
			}
			return maxInt(10, 90-total*12)
		}
		return maxInt(50, 80-total*8)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if final == LabelFake {
		return 70 + e.rng.Intn(26)
	}
	return 60 + e.rng.Intn(30)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
