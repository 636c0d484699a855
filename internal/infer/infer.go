package infer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/FernBytes/sheetnorm-cli/internal/schema"
)

// Patterns tried in fixed order; first match wins. The order is a compatibility
// contract with downstream callers, not a heuristic.
var (
	phoneRe    = regexp.MustCompile(`^[0-9\s()+\-]{10,}$`)
	currencyRe = regexp.MustCompile(`^\$?\d+(\.\d+)?$`)
	dateISORe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateUSRe   = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	dateEURe   = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}$`)
	intRe      = regexp.MustCompile(`^-?\d+$`)
	decimalRe  = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// InferType classifies a column from its sampled values. Only the first
// non-blank value is inspected; later values never change the result.
func InferType(values []any) schema.TypeTag {
	v, ok := firstNonBlank(values)
	if !ok {
		return schema.TypeEmpty
	}
	switch {
	case phoneRe.MatchString(v):
		return schema.TypePhone
	case strings.Contains(v, "@") && strings.Contains(v, "."):
		return schema.TypeEmail
	case currencyRe.MatchString(strings.ReplaceAll(v, ",", "")):
		return schema.TypeCurrency
	case dateISORe.MatchString(v), dateUSRe.MatchString(v), dateEURe.MatchString(v):
		return schema.TypeDate
	case intRe.MatchString(v), decimalRe.MatchString(v):
		return schema.TypeNumber
	default:
		return schema.TypeString
	}
}

func firstNonBlank(values []any) (string, bool) {
	for _, raw := range values {
		if raw == nil {
			continue
		}
		s := strings.TrimSpace(fmt.Sprint(raw))
		if s != "" {
			return s, true
		}
	}
	return "", false
}

// SampleIndices picks a deterministic, strictly increasing subset of row
// positions: head and tail always included, interior filled at fixed strides.
// Result length never exceeds desired.
func SampleIndices(totalRows, desired int) []int {
	if totalRows <= 0 || desired <= 0 {
		return nil
	}
	if totalRows <= desired {
		idx := make([]int, totalRows)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if desired == 1 {
		return []int{0}
	}

	last := totalRows - 1
	seen := map[int]bool{0: true, last: true}
	out := []int{0, last}
	step := totalRows / (desired - 1)
	for i := 1; i <= desired-2; i++ {
		pos := i * step
		if pos >= totalRows || pos == last || seen[pos] {
			continue
		}
		seen[pos] = true
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// SampleColumn extracts the values of one column at the given row indices.
// Missing cells in ragged rows are skipped rather than padded.
func SampleColumn(rows [][]string, indices []int, col int) []any {
	out := make([]any, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(rows) {
			continue
		}
		row := rows[i]
		if col < 0 || col >= len(row) {
			continue
		}
		out = append(out, row[col])
	}
	return out
}
