package models

import (
	"fmt"
	"strings"
)

// Term represents a term of the academic year in which a course can run.
type Term string

const (
	TermFall   Term = "Fall"
	TermWinter Term = "Winter"
	TermSummer Term = "Summer"
)

// DefaultTermCycle is the repeating term sequence semester indices map onto.
// Fall/Winter matches the standard two-term academic year.
var DefaultTermCycle = []Term{TermFall, TermWinter}

// ParseTerm converts a string into a Term
func ParseTerm(s string) (Term, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "fall":
		return TermFall, nil
	case "winter":
		return TermWinter, nil
	case "summer":
		return TermSummer, nil
	default:
		return "", fmt.Errorf("invalid term: %q", s)
	}
}

// TermForIndex maps a 1-based semester index onto the given term cycle.
func TermForIndex(index int, cycle []Term) Term {
	if len(cycle) == 0 {
		cycle = DefaultTermCycle
	}
	return cycle[(index-1)%len(cycle)]
}

// SemesterName derives the display name for a 1-based semester index,
// e.g. "Year 1 Fall".
func SemesterName(index int, cycle []Term) string {
	if len(cycle) == 0 {
		cycle = DefaultTermCycle
	}
	year := (index-1)/len(cycle) + 1
	return fmt.Sprintf("Year %d %s", year, TermForIndex(index, cycle))
}
