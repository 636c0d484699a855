// Package relate inspects headers and sampled rows to decide whether logical
// name/address fields are split across source columns or already combined.
package relate

import "strings"

// Component keys used in Result maps.
const (
	CompFirst  = "first"
	CompMiddle = "middle"
	CompLast   = "last"

	CompStreet    = "street"
	CompApartment = "apartment"
	CompCity      = "city"
	CompState     = "state"
	CompCountry   = "country"
	CompPostal    = "postal"
)

var nameKeywords = map[string][]string{
	CompFirst:  {"first name", "firstname", "fname", "given name"},
	CompMiddle: {"middle name", "middlename", "mname", "middle initial"},
	CompLast:   {"last name", "lastname", "lname", "surname", "family name"},
}

var addressKeywords = map[string][]string{
	CompStreet:    {"street", "street address", "address line 1", "address1", "addr1"},
	CompApartment: {"apartment", "apt", "unit", "suite", "address line 2", "address2"},
	CompCity:      {"city", "town"},
	CompState:     {"state", "province", "region"},
	CompCountry:   {"country"},
	CompPostal:    {"postal code", "zip code", "zipcode", "zip", "postcode", "postal"},
}

var combinedAddressKeywords = []string{"address", "location", "residence"}

var streetTypeKeywords = []string{
	"street", "st", "avenue", "ave", "road", "rd", "boulevard", "blvd",
	"lane", "ln", "drive", "dr", "court", "ct", "way", "place", "pl",
}

// Result reports which split/combined signals were found. The three signal
// groups are independent; consumers decide precedence (split wins over a
// combined column for the same logical field).
type Result struct {
	HasNameSplit   bool
	NameComponents map[string]string // component -> source header

	HasAddressSplit   bool
	AddressComponents map[string]string

	HasCombinedAddress    bool
	CombinedAddressColumn string
}

// Detect scans headers and sampled rows for split-field and combined-address
// signals. sampleRows are full source rows at the sampled indices.
func Detect(headers []string, sampleRows [][]string) Result {
	res := Result{
		NameComponents:    map[string]string{},
		AddressComponents: map[string]string{},
	}

	for comp, kws := range nameKeywords {
		if h, ok := findHeader(headers, kws); ok {
			res.NameComponents[comp] = h
		}
	}
	// A name split is actionable only when First and Last were found on two
	// distinct headers; a lone component is discarded outright.
	first, okFirst := res.NameComponents[CompFirst]
	last, okLast := res.NameComponents[CompLast]
	if okFirst && okLast && first != last {
		res.HasNameSplit = true
	} else {
		res.NameComponents = map[string]string{}
	}

	for comp, kws := range addressKeywords {
		if h, ok := findHeader(headers, kws); ok {
			res.AddressComponents[comp] = h
			res.HasAddressSplit = true
		}
	}

	for i, h := range headers {
		if !matchesAny(h, combinedAddressKeywords) {
			continue
		}
		if columnLooksLikeAddress(sampleRows, i) {
			res.HasCombinedAddress = true
			res.CombinedAddressColumn = h
			break
		}
	}
	return res
}

// findHeader returns the first header matching any keyword. Exact normalized
// matches are preferred; otherwise a substring match counts only when the
// header is strictly longer than the keyword, so a bare "Name" header cannot
// satisfy "first name"-style keywords by accident.
func findHeader(headers []string, keywords []string) (string, bool) {
	for _, h := range headers {
		if matchesAny(h, keywords) {
			return h, true
		}
	}
	return "", false
}

func matchesAny(header string, keywords []string) bool {
	h := normalize(header)
	for _, kw := range keywords {
		if h == kw {
			return true
		}
		if len(h) > len(kw) && strings.Contains(h, kw) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// columnLooksLikeAddress reports whether any sampled value in the column reads
// like a full street address: a street-type word plus a digit, or a comma plus
// a digit.
func columnLooksLikeAddress(sampleRows [][]string, col int) bool {
	for _, row := range sampleRows {
		if col < 0 || col >= len(row) {
			continue
		}
		v := strings.ToLower(strings.TrimSpace(row[col]))
		if v == "" {
			continue
		}
		if !containsDigit(v) {
			continue
		}
		if strings.Contains(v, ",") {
			return true
		}
		for _, tok := range strings.FieldsFunc(v, func(r rune) bool {
			return r == ' ' || r == ',' || r == '.'
		}) {
			for _, kw := range streetTypeKeywords {
				if tok == kw {
					return true
				}
			}
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
