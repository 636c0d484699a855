package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FernBytes/sheetnorm-cli/internal/infer"
	"github.com/FernBytes/sheetnorm-cli/internal/relate"
	"github.com/FernBytes/sheetnorm-cli/internal/schema"
)

// Match tiers reported per canonical field.
const (
	TierExact    = "exact"
	TierSemantic = "semantic"
	TierContent  = "content"
	TierCombiner = "combiner"
	TierNone     = "none"
)

// Suggestion is a proposed selections map plus, per canonical field, the tier
// that produced the entry. Selections always contain all 10 canonical fields.
type Suggestion struct {
	Selections map[string]string `json:"selections"`
	Tiers      map[string]string `json:"tiers"`
}

// Strategy proposes a mapping from source headers, rows and detected column
// relationships. Alternative matchers can be substituted without touching the
// row transformer.
type Strategy interface {
	Suggest(headers []string, rows [][]string, rel relate.Result) Suggestion
}

// KeywordStrategy is the default three-tier matcher: exact normalized header
// match, then substring match, then content-based inference over sampled
// values. First match wins at every tier; the precedence is a compatibility
// contract with callers tuned against it.
type KeywordStrategy struct {
	// SampleSize bounds how many rows are inspected for the content tier.
	SampleSize int
}

var fieldKeywords = map[string][]string{
	schema.FieldDate:     {"date", "purchase date", "order date", "transaction date"},
	schema.FieldName:     {"name", "full name", "customer name", "client name", "customer"},
	schema.FieldAge:      {"age", "customer age", "years old"},
	schema.FieldAddress:  {"address", "home address", "street address", "location", "residence"},
	schema.FieldGender:   {"gender", "sex"},
	schema.FieldContact:  {"contact number", "phone number", "phone", "contact", "mobile", "telephone", "cell"},
	schema.FieldProduct:  {"product purchased", "product name", "product", "item purchased", "item"},
	schema.FieldAmount:   {"amount", "amount paid", "total amount", "purchase amount", "price", "total", "cost"},
	schema.FieldQuantity: {"product quantity", "quantity", "qty", "units", "number of items", "count"},
	schema.FieldEmail:    {"email", "e-mail", "email address", "mail"},
}

// Header tokens that mark identifier/index columns; such columns must never
// satisfy Amount, Product Quantity or Contact Number even when numeric.
var identifierTokens = map[string]bool{
	"id": true, "identifier": true, "index": true, "idx": true,
	"key": true, "code": true, "sku": true, "row": true, "serial": true,
}

// Suggest builds a full selections map for the canonical schema.
func (ks KeywordStrategy) Suggest(headers []string, rows [][]string, rel relate.Result) Suggestion {
	sel := make(map[string]string, schema.Width)
	tiers := make(map[string]string, schema.Width)
	used := make(map[string]bool, len(headers))

	// Split signals claim their component headers up front so the keyword
	// tiers cannot hand e.g. "First Name" to the canonical Name field.
	if rel.HasNameSplit {
		sel[schema.FieldName] = FromCombiner
		tiers[schema.FieldName] = TierCombiner
		for _, h := range rel.NameComponents {
			used[h] = true
		}
	}
	switch {
	case rel.HasAddressSplit:
		sel[schema.FieldAddress] = FromCombiner
		tiers[schema.FieldAddress] = TierCombiner
		for _, h := range rel.AddressComponents {
			used[h] = true
		}
	case rel.HasCombinedAddress:
		sel[schema.FieldAddress] = rel.CombinedAddressColumn
		tiers[schema.FieldAddress] = TierSemantic
		used[rel.CombinedAddressColumn] = true
	}

	// Tier 1: exact normalized match.
	for _, field := range schema.Fields {
		if _, done := sel[field]; done {
			continue
		}
		if h, ok := findByKeywords(headers, used, fieldKeywords[field], true); ok {
			sel[field] = h
			tiers[field] = TierExact
			used[h] = true
		}
	}
	// Tier 2: substring match, header strictly longer than the keyword.
	for _, field := range schema.Fields {
		if _, done := sel[field]; done {
			continue
		}
		if h, ok := findByKeywords(headers, used, fieldKeywords[field], false); ok {
			sel[field] = h
			tiers[field] = TierSemantic
			used[h] = true
		}
	}
	// Tier 3: content-based inference over sampled values.
	ks.contentPass(headers, rows, sel, tiers, used)

	for _, field := range schema.Fields {
		if _, done := sel[field]; !done {
			sel[field] = ""
			tiers[field] = TierNone
		}
	}
	return Suggestion{Selections: sel, Tiers: tiers}
}

func findByKeywords(headers []string, used map[string]bool, keywords []string, exact bool) (string, bool) {
	for _, kw := range keywords {
		for _, h := range headers {
			if used[h] {
				continue
			}
			n := normalizeHeader(h)
			if exact {
				if n == kw {
					return h, true
				}
				continue
			}
			if len(n) > len(kw) && strings.Contains(n, kw) {
				return h, true
			}
		}
	}
	return "", false
}

func (ks KeywordStrategy) contentPass(headers []string, rows [][]string, sel, tiers map[string]string, used map[string]bool) {
	size := ks.SampleSize
	if size <= 0 {
		size = 10
	}
	indices := infer.SampleIndices(len(rows), size)

	types := make([]schema.TypeTag, len(headers))
	samples := make([][]any, len(headers))
	for i := range headers {
		samples[i] = infer.SampleColumn(rows, indices, i)
		types[i] = infer.InferType(samples[i])
	}

	claim := func(field string, match func(i int) bool) {
		if _, done := sel[field]; done {
			return
		}
		for i, h := range headers {
			if used[h] {
				continue
			}
			if match(i) {
				sel[field] = h
				tiers[field] = TierContent
				used[h] = true
				return
			}
		}
	}

	claim(schema.FieldEmail, func(i int) bool { return types[i] == schema.TypeEmail })
	claim(schema.FieldContact, func(i int) bool {
		return types[i] == schema.TypePhone && !isIdentifierHeader(headers[i])
	})
	claim(schema.FieldDate, func(i int) bool { return types[i] == schema.TypeDate })
	claim(schema.FieldAge, func(i int) bool {
		return types[i] == schema.TypeNumber && firstIntInRange(samples[i], 0, 150)
	})
	claim(schema.FieldAmount, func(i int) bool {
		return types[i] == schema.TypeCurrency && !isIdentifierHeader(headers[i])
	})
	claim(schema.FieldQuantity, func(i int) bool {
		return types[i] == schema.TypeNumber && !isIdentifierHeader(headers[i])
	})
	claim(schema.FieldGender, func(i int) bool { return looksLikeGender(samples[i]) })
}

func isIdentifierHeader(header string) bool {
	for _, tok := range strings.FieldsFunc(strings.ToLower(header), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		if identifierTokens[tok] {
			return true
		}
	}
	return false
}

func firstIntInRange(values []any, lo, hi int) bool {
	for _, raw := range values {
		s := strings.TrimSpace(asString(raw))
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		return n >= lo && n <= hi
	}
	return false
}

func looksLikeGender(values []any) bool {
	for _, raw := range values {
		s := strings.ToUpper(strings.TrimSpace(asString(raw)))
		if s == "" {
			continue
		}
		return s == "M" || s == "F" || s == "MALE" || s == "FEMALE"
	}
	return false
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func normalizeHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}
