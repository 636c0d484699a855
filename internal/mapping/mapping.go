// Package mapping holds the canonical-field → source-column mapping, the
// session-scoped store that addresses mappings by opaque id, and the matching
// strategy that proposes mappings from headers and sampled content.
package mapping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/FernBytes/sheetnorm-cli/internal/schema"
)

// FromCombiner marks a canonical field whose value is derived by a field
// combiner instead of being read from a single source column.
const FromCombiner = "__combine__"

// Record is an immutable mapping from every canonical field to a source
// header, the empty string (no mapping), or FromCombiner. Component headers
// used by the combiners ride along so the transforming caller can splice
// combined values without consulting the detector again.
type Record struct {
	Fields       map[string]string `json:"fields" yaml:"fields"`
	NameParts    map[string]string `json:"name_parts,omitempty" yaml:"name_parts,omitempty"`
	AddressParts map[string]string `json:"address_parts,omitempty" yaml:"address_parts,omitempty"`
}

// MissingFieldsError reports canonical fields absent from a selections map.
// An explicit empty string is a valid "no mapping"; a missing key is not.
type MissingFieldsError struct {
	Missing []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("mapping is missing canonical fields: %s", strings.Join(e.Missing, ", "))
}

// NewRecord validates selections against the canonical schema and builds an
// immutable record. All 10 canonical fields must be present as keys.
func NewRecord(selections map[string]string) (Record, error) {
	var missing []string
	for _, f := range schema.Fields {
		if _, ok := selections[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Record{}, &MissingFieldsError{Missing: missing}
	}
	fields := make(map[string]string, schema.Width)
	for _, f := range schema.Fields {
		fields[f] = selections[f]
	}
	return Record{Fields: fields}, nil
}

// WithParts returns a copy of the record carrying combiner component headers.
func (r Record) WithParts(nameParts, addressParts map[string]string) Record {
	r.NameParts = copyMap(nameParts)
	r.AddressParts = copyMap(addressParts)
	return r
}

func copyMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
