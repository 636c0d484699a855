// Package transform applies a column mapping to arbitrary-width source rows,
// producing canonical 10-field rows. It knows nothing about combiners; the
// calling session splices combined values into sentinel positions.
package transform

import (
	"github.com/FernBytes/sheetnorm-cli/internal/mapping"
	"github.com/FernBytes/sheetnorm-cli/internal/schema"
)

// Rows resolves each canonical field of every source row through the mapping.
// Empty mapping entries and the combiner sentinel emit the empty string, as
// do out-of-range indices and absent cells in ragged rows.
func Rows(rec mapping.Record, sourceRows [][]string, headers []string) [][]string {
	lookup := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, ok := lookup[h]; !ok {
			lookup[h] = i
		}
	}

	out := make([][]string, len(sourceRows))
	for r, src := range sourceRows {
		row := make([]string, schema.Width)
		for c, field := range schema.Fields {
			header := rec.Fields[field]
			if header == "" || header == mapping.FromCombiner {
				continue
			}
			idx, ok := lookup[header]
			if !ok || idx >= len(src) {
				continue
			}
			row[c] = FormatValue(src[idx], header)
		}
		out[r] = row
	}
	return out
}

// Cell resolves a single source cell by header name, empty when absent.
func Cell(row []string, headers []string, header string) string {
	for i, h := range headers {
		if h == header {
			if i < len(row) {
				return row[i]
			}
			return ""
		}
	}
	return ""
}
