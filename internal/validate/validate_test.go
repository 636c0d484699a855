package validate

import (
	"testing"

	"github.com/FernBytes/sheetnorm-cli/internal/schema"
)

func findEntry(entries []Entry, column string) *Entry {
	for i := range entries {
		if entries[i].Column == column {
			return &entries[i]
		}
	}
	return nil
}

func TestRowsMixedProblems(t *testing.T) {
	rep := Rows([][]string{
		{"2024-01-01", "John Smith", "35", "", "", "not-a-phone", "Widget", "abc", "2", "bad-email"},
	})
	if !rep.Blocking() {
		t.Fatalf("unparsable Amount must be blocking")
	}
	if e := findEntry(rep.Issues, schema.FieldAmount); e == nil || len(e.Rows) != 1 || e.Rows[0] != 0 {
		t.Fatalf("missing Amount issue: %+v", rep.Issues)
	}
	for _, col := range []string{schema.FieldContact, schema.FieldEmail} {
		if findEntry(rep.Warnings, col) == nil {
			t.Fatalf("missing %s warning: %+v", col, rep.Warnings)
		}
	}
	// Blank Gender and a valid Age produce no warnings.
	if findEntry(rep.Warnings, schema.FieldGender) != nil {
		t.Fatalf("blank gender warned: %+v", rep.Warnings)
	}
	if findEntry(rep.Warnings, schema.FieldAge) != nil {
		t.Fatalf("valid age warned: %+v", rep.Warnings)
	}
}

func TestRowsWrongWidthSkipsContentChecks(t *testing.T) {
	rep := Rows([][]string{
		{"too", "short"},
	})
	if len(rep.Issues) != 1 {
		t.Fatalf("issues=%+v want one width issue", rep.Issues)
	}
	if len(rep.Warnings) != 0 {
		t.Fatalf("short row must skip content checks: %+v", rep.Warnings)
	}
}

func TestRowsCleanRow(t *testing.T) {
	rep := Rows([][]string{
		{"1/5/2024", "Jane Doe", "34", "1 Elm St, Salem", "F", "+1 555 123 4567", "Widget", "$1,234.50", "3", "jane@x.io"},
	})
	if len(rep.Issues) != 0 || len(rep.Warnings) != 0 {
		t.Fatalf("clean row reported problems: %+v", rep)
	}
}

func TestRowsAggregatesIdenticalWarnings(t *testing.T) {
	bad := func() []string {
		return []string{"", "", "", "", "X", "", "", "", "", ""}
	}
	rep := Rows([][]string{bad(), bad(), bad()})
	e := findEntry(rep.Warnings, schema.FieldGender)
	if e == nil {
		t.Fatalf("gender warning missing: %+v", rep.Warnings)
	}
	if len(rep.Warnings) != 1 {
		t.Fatalf("identical warnings not aggregated: %+v", rep.Warnings)
	}
	if len(e.Rows) != 3 || e.Rows[0] != 0 || e.Rows[2] != 2 {
		t.Fatalf("rows=%v want [0 1 2]", e.Rows)
	}
}

func TestRowsAgeBounds(t *testing.T) {
	row := func(age string) []string {
		return []string{"", "", age, "", "", "", "", "", "", ""}
	}
	rep := Rows([][]string{row("151"), row("150"), row("0"), row("-1"), row("twelve")})
	e := findEntry(rep.Warnings, schema.FieldAge)
	if e == nil {
		t.Fatalf("age warnings missing")
	}
	if len(e.Rows) != 3 {
		t.Fatalf("rows=%v want [0 3 4]", e.Rows)
	}
}

func TestRowsGenderCaseInsensitive(t *testing.T) {
	row := func(g string) []string {
		return []string{"", "", "", "", g, "", "", "", "", ""}
	}
	rep := Rows([][]string{row("male"), row("F"), row("Female"), row("unknown")})
	e := findEntry(rep.Warnings, schema.FieldGender)
	if e == nil || len(e.Rows) != 1 || e.Rows[0] != 3 {
		t.Fatalf("gender warnings=%+v want only row 3", rep.Warnings)
	}
}
