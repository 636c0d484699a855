package combine

import (
	"regexp"
	"strings"
)

// Address joins present parts with ", " in the order street, apartment, city,
// "state postal", country. State and postal form one segment joined by a
// single space; either may be absent. Absent parts are omitted, never padded.
func Address(street, apartment, city, state, postal, country string) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{street, apartment, city} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	statePostal := strings.TrimSpace(strings.TrimSpace(state) + " " + strings.TrimSpace(postal))
	if statePostal != "" {
		parts = append(parts, statePostal)
	}
	if c := strings.TrimSpace(country); c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, ", ")
}

// ParsedAddress holds the components recovered by ParseAddress.
type ParsedAddress struct {
	Street    string
	Apartment string
	City      string
	State     string
	Postal    string
	Country   string
}

var unitRe = regexp.MustCompile(`(?i)^(apt|apartment|unit|suite|ste|#)\b`)
var trailingNumRe = regexp.MustCompile(`^(.*?)\s+(\d{3,10})$`)

// ParseAddress is the best-effort, lossy inverse of Address. It splits on
// commas and applies position-based heuristics; it does not guarantee a
// round-trip of the original components.
func ParseAddress(full string) ParsedAddress {
	var p ParsedAddress
	segs := make([]string, 0, 5)
	for _, s := range strings.Split(full, ",") {
		if s = strings.TrimSpace(s); s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return p
	}
	p.Street = segs[0]
	segs = segs[1:]

	// Second segment is an apartment when short or unit-like, else the city.
	if len(segs) > 0 {
		if unitRe.MatchString(segs[0]) || len(segs[0]) <= 6 {
			p.Apartment = segs[0]
		} else {
			p.City = segs[0]
		}
		segs = segs[1:]
	}
	for _, s := range segs {
		if m := trailingNumRe.FindStringSubmatch(s); m != nil {
			p.State = strings.TrimSpace(m[1])
			p.Postal = m[2]
			continue
		}
		if p.City == "" {
			p.City = s
			continue
		}
		if p.Country == "" {
			p.Country = s
		}
	}
	return p
}
