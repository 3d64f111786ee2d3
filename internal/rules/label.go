package rules

import "fmt"

// Label is a verdict over a posting, either the statistical
// classifier's prior or the engine's final decision.
type Label string

const (
	LabelReal Label = "Real"
	LabelFake Label = "Fake"
)

// ParseLabel converts a raw string to a Label, returning an error for
// unknown values.
func ParseLabel(s string) (Label, error) {
	l := Label(s)
	switch l {
	case LabelReal, LabelFake:
		return l, nil
	}
	return "", fmt.Errorf("unknown verdict label %q", s)
}
