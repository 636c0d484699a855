// Package validate checks canonical rows against per-column format
// expectations, separating blocking issues from advisory warnings.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/FernBytes/sheetnorm-cli/internal/schema"
)

// Entry is one reported problem: the offending column, a description, and
// every row index it affects.
type Entry struct {
	Column  string `json:"column"`
	Message string `json:"message"`
	Rows    []int  `json:"rows"`
}

// Report separates blocking issues from non-blocking warnings. Identical
// problems across rows are aggregated into one entry.
type Report struct {
	Issues   []Entry `json:"issues"`
	Warnings []Entry `json:"warnings"`
}

// Blocking reports whether any blocking issue was found.
func (r Report) Blocking() bool { return len(r.Issues) > 0 }

var phoneRe = regexp.MustCompile(`^[0-9\s()+\-]{10,}$`)

var genderValues = map[string]bool{"M": true, "F": true, "MALE": true, "FEMALE": true}

// Rows validates transformed rows. A wrong-width row is a blocking issue and
// skips content checks for that row; an unparsable Amount is the only
// blocking content check. Everything else is a warning. Blank cells are
// always acceptable.
func Rows(rows [][]string) Report {
	issues := newCollector()
	warnings := newCollector()

	for i, row := range rows {
		if len(row) != schema.Width {
			issues.add("", fmt.Sprintf("row has %d columns, expected %d", len(row), schema.Width), i)
			continue
		}
		cell := func(field string) string {
			return strings.TrimSpace(row[schema.Index(field)])
		}

		if v := cell(schema.FieldEmail); v != "" && !(strings.Contains(v, "@") && strings.Contains(v, ".")) {
			warnings.add(schema.FieldEmail, "value does not look like an email address", i)
		}
		if v := cell(schema.FieldContact); v != "" && !phoneRe.MatchString(v) {
			warnings.add(schema.FieldContact, "value does not look like a phone number", i)
		}
		if v := cell(schema.FieldAmount); v != "" {
			clean := strings.ReplaceAll(strings.ReplaceAll(v, "$", ""), ",", "")
			if _, err := strconv.ParseFloat(clean, 64); err != nil {
				issues.add(schema.FieldAmount, "value is not numeric", i)
			}
		}
		if v := cell(schema.FieldQuantity); v != "" {
			if _, err := strconv.Atoi(v); err != nil {
				warnings.add(schema.FieldQuantity, "value is not an integer", i)
			}
		}
		if v := cell(schema.FieldAge); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 || n > 150 {
				warnings.add(schema.FieldAge, "value is not an age between 0 and 150", i)
			}
		}
		if v := cell(schema.FieldGender); v != "" && !genderValues[strings.ToUpper(v)] {
			warnings.add(schema.FieldGender, "value is not one of M, F, Male, Female", i)
		}
	}
	return Report{Issues: issues.entries(), Warnings: warnings.entries()}
}

// collector aggregates identical column+message pairs across rows while
// preserving first-seen order.
type collector struct {
	order []string
	byKey map[string]*Entry
}

func newCollector() *collector {
	return &collector{byKey: make(map[string]*Entry)}
}

func (c *collector) add(column, message string, row int) {
	key := column + "\x00" + message
	e, ok := c.byKey[key]
	if !ok {
		e = &Entry{Column: column, Message: message}
		c.byKey[key] = e
		c.order = append(c.order, key)
	}
	e.Rows = append(e.Rows, row)
}

func (c *collector) entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, key := range c.order {
		e := c.byKey[key]
		sort.Ints(e.Rows)
		out = append(out, *e)
	}
	return out
}
