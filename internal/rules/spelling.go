package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/client9/misspell"
)

// SpellChecker answers whether a single lowercase word looks misspelled.
// It is a best-effort enrichment: implementations may be slow or
// unavailable, and the caller treats any failure as "not misspelled".
type SpellChecker interface {
	Misspelled(word string) bool
}

// MisspellChecker backs SpellChecker with the misspell dictionary of
// commonly misspelled English words.
type MisspellChecker struct {
	rep *misspell.Replacer
}

// NewSpellChecker builds the default dictionary-backed checker.
func NewSpellChecker() *MisspellChecker {
	return &MisspellChecker{rep: misspell.New()}
}

// Misspelled reports whether the dictionary has a correction for word.
func (c *MisspellChecker) Misspelled(word string) bool {
	_, diffs := c.rep.Replace(word)
	return len(diffs) > 0
}

var wordRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// CheckWritingQuality runs the shallow spelling and grammar heuristics
// over the combined text. Texts shorter than 20 characters are skipped.
// Any internal failure — including a panicking or missing spell checker —
// degrades to zero findings; this stage must never abort the pipeline.
func (r *Ruleset) CheckWritingQuality(combined string, spell SpellChecker) (out Findings) {
	defer func() {
		if recover() != nil {
			out = Findings{}
		}
	}()

	if len(strings.TrimSpace(combined)) < 20 {
		return out
	}

	if spell != nil {
		words := wordRe.FindAllString(strings.ToLower(combined), -1)
		if len(words) > 10 {
			filtered := words[:0:0]
			for _, w := range words {
				if _, allowed := r.SpellAllowList[w]; !allowed {
					filtered = append(filtered, w)
				}
			}
			if len(filtered) > 0 {
				misspelled := 0
				for _, w := range filtered {
					if spell.Misspelled(w) {
						misspelled++
					}
				}
				rate := float64(misspelled) / float64(len(filtered))
				if rate > 0.15 {
					out.Add(Critical("high_spelling_errors", fmt.Sprintf(
						"High spelling error rate (%.1f%%) suggests unprofessional content", rate*100)))
				} else if rate > 0.08 {
					out.Add(Info("moderate_spelling_errors", fmt.Sprintf(
						"Moderate spelling error rate (%.1f%%) indicates poor quality", rate*100)))
				}
			}
		}
	}

	sentences := splitSentences(combined)
	if len(sentences) == 0 {
		return out
	}

	short := 0
	unterminated := 0
	runOn := false
	for _, s := range sentences {
		n := len(strings.Fields(s.text))
		if n < 4 {
			short++
		}
		if n > 30 {
			runOn = true
		}
		if !s.terminated {
			unterminated++
		}
	}

	if float64(short)/float64(len(sentences)) > 0.4 {
		out.Add(Info("poor_sentence_structure",
			"Many very short sentences suggest poor grammar or rushed writing"))
	}
	if float64(unterminated)/float64(len(sentences)) > 0.3 {
		out.Add(Info("missing_punctuation",
			"Missing punctuation suggests poor writing quality"))
	}
	if runOn {
		out.Add(Info("run_on_sentences",
			"Very long sentences suggest poor writing structure"))
	}

	return out
}

type sentence struct {
	text       string
	terminated bool
}

// splitSentences breaks text on sentence-terminating punctuation,
// remembering whether each piece actually ended with a terminator.
// Fragments of five characters or fewer are discarded.
func splitSentences(text string) []sentence {
	var out []sentence
	start := 0
	flush := func(end int, terminated bool) {
		s := strings.TrimSpace(text[start:end])
		if len(s) > 5 {
			out = append(out, sentence{text: s, terminated: terminated})
		}
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			flush(i, true)
			for i+1 < len(text) && (text[i+1] == '.' || text[i+1] == '!' || text[i+1] == '?') {
				i++
			}
			start = i + 1
		}
	}
	flush(len(text), false)
	return out
}
