// Package combine merges split name/address source values into single
// canonical values, with best-effort reverse parsers for diagnostics.
package combine

import "strings"

// Name joins non-blank parts in First-Middle-Last order with single spaces.
// Blank components are dropped entirely. The parameter order (first, last,
// middle) mirrors how callers usually have the parts on hand; the output
// order is fixed regardless.
func Name(first, last, middle string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// SplitName is the best-effort inverse of Name. It is advisory only: middle
// names with spaces and multi-word surnames are not recoverable.
func SplitName(full string) (first, middle, last string) {
	tokens := strings.Fields(full)
	switch len(tokens) {
	case 0:
		return "", "", ""
	case 1:
		return tokens[0], "", ""
	case 2:
		return tokens[0], "", tokens[1]
	default:
		return tokens[0], strings.Join(tokens[1:len(tokens)-1], " "), tokens[len(tokens)-1]
	}
}
