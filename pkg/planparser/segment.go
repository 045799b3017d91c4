package planparser

import (
	"regexp"
	"strings"
)

var (
	// clauseSeparator matches punctuation and the connectives that join two plans ("and", "also", "must also").
	// Alternation order matters: "또한" is consumed as "또".
	clauseSeparator = regexp.MustCompile(`[,.\n]|(?:있고|하고|그리고|또|또한|이랑|랑|(?:해야\s*하고)|(?:해야\s*되고))`)

	// timeOccurrence finds hour expressions used to detect two plans glued into one clause.
	timeOccurrence = regexp.MustCompile(`(?:(?:한|두|세|네|다섯|여섯|일곱|여덟|아홉|열한|열두|열)\s*시|\d{1,2}\s*시|\d{1,2}:\d{2})`)
)

// SplitClauses breaks text into trimmed, non-empty clauses in their original order.
// A clause carrying two or more time expressions is split once, right before the second one.
func SplitClauses(text string) []string {
	var clauses []string
	for _, part := range clauseSeparator.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		clauses = append(clauses, resplit(part)...)
	}
	return clauses
}

// resplit splits a clause at its second time expression. It is not recursive.
func resplit(clause string) []string {
	locs := timeOccurrence.FindAllStringIndex(clause, -1)
	if len(locs) < 2 {
		return []string{clause}
	}

	at := locs[1][0]
	parts := make([]string, 0, 2)
	if head := strings.TrimSpace(clause[:at]); head != "" {
		parts = append(parts, head)
	}
	if tail := strings.TrimSpace(clause[at:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}
