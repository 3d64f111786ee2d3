package rules_test

import (
	"strings"
	"testing"

	"jobshield/verify-service/internal/rules"
)

type stubSpell struct {
	bad map[string]bool
}

func (s stubSpell) Misspelled(word string) bool { return s.bad[word] }

type panicSpell struct{}

func (panicSpell) Misspelled(string) bool { panic("dictionary unavailable") }

// ── CheckWritingQuality ────────────────────────────────────────────────────

func TestCheckWritingQuality_ShortTextSkipped(t *testing.T) {
	r := rules.DefaultRuleset()
	fs := r.CheckWritingQuality("short ad", stubSpell{bad: map[string]bool{"short": true}})
	if fs.Len() != 0 {
		t.Errorf("text under 20 chars produced findings: %v", findingTags(fs))
	}
}

func TestCheckWritingQuality_CleanText(t *testing.T) {
	r := rules.DefaultRuleset()
	text := "We are hiring a backend developer for our payments platform. " +
		"You will design services in Go and review code with the team. " +
		"The position is based in Pune with a hybrid schedule."
	fs := r.CheckWritingQuality(text, stubSpell{})
	if fs.Len() != 0 {
		t.Errorf("well-written text produced findings: %v", findingTags(fs))
	}
}

func TestCheckWritingQuality_SpellingRates(t *testing.T) {
	r := rules.DefaultRuleset()
	// 14 checked words, 3 marked misspelled: rate ~21% crosses the
	// critical threshold.
	text := "jion our compny for exclent growth and great learning with many good people here."
	bad := map[string]bool{"jion": true, "compny": true, "exclent": true}

	fs := r.CheckWritingQuality(text, stubSpell{bad: bad})
	if !hasTag(fs, "high_spelling_errors") {
		t.Fatalf("missing high_spelling_errors, got %v", findingTags(fs))
	}
	for _, f := range fs.List() {
		if f.Tag == "high_spelling_errors" && f.Severity != rules.SeverityCritical {
			t.Errorf("high_spelling_errors severity = %q, want critical", f.Severity)
		}
	}

	// Two of fourteen (~14%) lands in the moderate band.
	fs = r.CheckWritingQuality(text, stubSpell{bad: map[string]bool{"jion": true, "compny": true}})
	if !hasTag(fs, "moderate_spelling_errors") {
		t.Errorf("missing moderate_spelling_errors, got %v", findingTags(fs))
	}
	if hasTag(fs, "high_spelling_errors") {
		t.Errorf("moderate rate also flagged high: %v", findingTags(fs))
	}
}

// Allow-listed technical vocabulary is never counted, even if the
// checker would flag it.
func TestCheckWritingQuality_AllowList(t *testing.T) {
	r := rules.DefaultRuleset()
	text := "Looking for developers who know javascript html css sql api and python for this role."
	spell := stubSpell{bad: map[string]bool{
		"javascript": true, "html": true, "css": true, "sql": true, "api": true, "python": true,
	}}
	fs := r.CheckWritingQuality(text, spell)
	if hasTag(fs, "high_spelling_errors") || hasTag(fs, "moderate_spelling_errors") {
		t.Errorf("allow-listed words counted as misspellings: %v", findingTags(fs))
	}
}

func TestCheckWritingQuality_NilCheckerStillChecksGrammar(t *testing.T) {
	r := rules.DefaultRuleset()
	text := "earn money from home join today no forms no calls just work and get paid every single week all year"
	fs := r.CheckWritingQuality(text, nil)
	if !hasTag(fs, "missing_punctuation") {
		t.Errorf("unpunctuated text with nil checker missing missing_punctuation, got %v", findingTags(fs))
	}
}

// A panicking checker degrades to zero findings instead of aborting.
func TestCheckWritingQuality_PanicRecovered(t *testing.T) {
	r := rules.DefaultRuleset()
	text := "jion our compny for exclent growth and great learning with many good people here."
	fs := r.CheckWritingQuality(text, panicSpell{})
	if fs.Len() != 0 {
		t.Errorf("panicking checker produced findings: %v", findingTags(fs))
	}
}

func TestCheckWritingQuality_SentenceStructure(t *testing.T) {
	r := rules.DefaultRuleset()

	choppy := "Apply today. Easy work. Good pay. Join us now. No forms. Great team here."
	fs := r.CheckWritingQuality(choppy, nil)
	if !hasTag(fs, "poor_sentence_structure") {
		t.Errorf("choppy text missing poor_sentence_structure, got %v", findingTags(fs))
	}

	runOn := "This role involves " + strings.Repeat("many tasks and ", 12) + "more."
	fs = r.CheckWritingQuality(runOn, nil)
	if !hasTag(fs, "run_on_sentences") {
		t.Errorf("40-word sentence missing run_on_sentences, got %v", findingTags(fs))
	}
}

// ── MisspellChecker ────────────────────────────────────────────────────────

func TestMisspellChecker(t *testing.T) {
	c := rules.NewSpellChecker()
	if !c.Misspelled("occured") {
		t.Error("Misspelled(\"occured\") = false, want true")
	}
	if c.Misspelled("occurred") {
		t.Error("Misspelled(\"occurred\") = true, want false")
	}
}
