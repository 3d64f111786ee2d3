// Package rules implements the scam-evidence verification engine: a set
// of independent signal extractors over a submitted job posting, an
// aggregator that merges their findings, and the decision logic that can
// override the statistical classifier's verdict.
package rules

// Severity classifies how strongly a finding counts as fraud evidence.
// It is assigned at the point a finding is created, so downstream logic
// never has to pattern-match tag names.
type Severity string

const (
	// SeverityCritical marks strong fraud evidence used by the
	// override thresholds.
	SeverityCritical Severity = "critical"
	// SeverityInformational marks weaker signals shown to the user but
	// weighted lightly in the decision.
	SeverityInformational Severity = "informational"
)

// Finding is one fraud indicator attached to a posting by a detector.
// Tag is a stable symbolic key (e.g. "suspicious_tld"); Reason is the
// human-readable explanation paired with it.
type Finding struct {
	Tag      string   `json:"tag"`
	Reason   string   `json:"reason"`
	Severity Severity `json:"severity"`
}

// Info builds an informational finding.
func Info(tag, reason string) Finding {
	return Finding{Tag: tag, Reason: reason, Severity: SeverityInformational}
}

// Critical builds a critical finding.
func Critical(tag, reason string) Finding {
	return Finding{Tag: tag, Reason: reason, Severity: SeverityCritical}
}

// Findings is an ordered collection of findings, deduplicated by tag.
// Keeping issues and reasons in one sequence preserves their pairing
// through merging and sampling; the parallel issue/reason lists exposed
// at the API boundary are projections of this sequence.
type Findings struct {
	items []Finding
	seen  map[string]struct{}
}

// Add appends f unless a finding with the same tag is already present.
// Repeated detection of the same tag across detectors collapses to the
// first occurrence.
func (fs *Findings) Add(f Finding) {
	if fs.seen == nil {
		fs.seen = make(map[string]struct{})
	}
	if _, dup := fs.seen[f.Tag]; dup {
		return
	}
	fs.seen[f.Tag] = struct{}{}
	fs.items = append(fs.items, f)
}

// Merge adds every finding from other, keeping first-seen tags.
func (fs *Findings) Merge(other Findings) {
	for _, f := range other.items {
		fs.Add(f)
	}
}

// List returns a copy of the findings in detection order.
func (fs Findings) List() []Finding {
	out := make([]Finding, len(fs.items))
	copy(out, fs.items)
	return out
}

// Len returns the number of distinct findings.
func (fs Findings) Len() int { return len(fs.items) }

// CriticalCount returns the number of findings with critical severity.
func (fs Findings) CriticalCount() int {
	n := 0
	for _, f := range fs.items {
		if f.Severity == SeverityCritical {
			n++
		}
	}
	return n
}

// Issues projects the finding tags as a parallel list.
func (fs Findings) Issues() []string {
	out := make([]string, len(fs.items))
	for i, f := range fs.items {
		out[i] = f.Tag
	}
	return out
}

// Reasons projects the finding explanations as a parallel list.
func (fs Findings) Reasons() []string {
	out := make([]string, len(fs.items))
	for i, f := range fs.items {
		out[i] = f.Reason
	}
	return out
}
