package normalize

import (
	"errors"
	"testing"

	"github.com/FernBytes/sheetnorm-cli/internal/schema"
)

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %v", err)
	}
	return e.Kind
}

func TestAnalyzeUnsupportedSource(t *testing.T) {
	s := NewSession()
	if _, err := s.Analyze(nil, [][]string{{"x"}}); kindOf(t, err) != KindUnsupportedSource {
		t.Fatalf("no headers: %v", err)
	}
	if _, err := s.Analyze([]string{"a"}, nil); kindOf(t, err) != KindUnsupportedSource {
		t.Fatalf("no rows: %v", err)
	}
}

func TestAnalyzeColumnsAndSuggestion(t *testing.T) {
	headers := []string{"Email", "Amount"}
	rows := [][]string{{"a@b.io", "$5.00"}, {"c@d.io", "$6.00"}}
	s := NewSession()
	an, err := s.Analyze(headers, rows)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if an.Columns[0].Type != schema.TypeEmail || an.Columns[1].Type != schema.TypeCurrency {
		t.Fatalf("column types: %+v", an.Columns)
	}
	if an.Suggestion.Selections[schema.FieldEmail] != "Email" {
		t.Fatalf("suggestion: %+v", an.Suggestion)
	}
}

func TestCreateMappingMissingFieldFailsAtCreation(t *testing.T) {
	s := NewSession()
	sel := map[string]string{schema.FieldEmail: "Email"} // 9 fields absent
	_, err := s.CreateMapping(sel, nil)
	if kindOf(t, err) != KindInvalidMapping {
		t.Fatalf("want InvalidMapping, got %v", err)
	}
}

func TestTransformUnknownMapping(t *testing.T) {
	s := NewSession()
	_, err := s.Transform("nope", []string{"a"}, [][]string{{"x"}})
	if kindOf(t, err) != KindMappingNotFound {
		t.Fatalf("want MappingNotFound, got %v", err)
	}
}

func TestTransformNilInput(t *testing.T) {
	s := NewSession()
	_, err := s.Transform("id", nil, nil)
	if kindOf(t, err) != KindInvalidInput {
		t.Fatalf("want InvalidInput, got %v", err)
	}
}

func TestEndToEndWithSplitNameAndAddress(t *testing.T) {
	headers := []string{"First Name", "Last Name", "Street", "City", "State", "Zip", "Email"}
	rows := [][]string{
		{"Jane", "Doe", "123 Main St", "New York", "NY", "10001", "jane@x.io"},
		{"Bob", "", "5 High St", "Leeds", "", "", "bob@y.io"},
	}
	s := NewSession()
	an, err := s.Analyze(headers, rows)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !an.Relationships.HasNameSplit || !an.Relationships.HasAddressSplit {
		t.Fatalf("relationships: %+v", an.Relationships)
	}
	id, err := s.CreateMapping(an.Suggestion.Selections, &an.Relationships)
	if err != nil {
		t.Fatalf("CreateMapping: %v", err)
	}
	out, err := s.Transform(id, headers, rows)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	first := out[0]
	if got := first[schema.Index(schema.FieldName)]; got != "Jane Doe" {
		t.Fatalf("name=%q", got)
	}
	if got := first[schema.Index(schema.FieldAddress)]; got != "123 Main St, New York, NY 10001" {
		t.Fatalf("address=%q", got)
	}
	if got := first[schema.Index(schema.FieldEmail)]; got != "jane@x.io" {
		t.Fatalf("email=%q", got)
	}
	second := out[1]
	if got := second[schema.Index(schema.FieldName)]; got != "Bob" {
		t.Fatalf("name=%q", got)
	}
	if got := second[schema.Index(schema.FieldAddress)]; got != "5 High St, Leeds" {
		t.Fatalf("address=%q", got)
	}

	rep, err := s.Validate(out)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if rep.Blocking() {
		t.Fatalf("unexpected blocking issues: %+v", rep.Issues)
	}
}

func TestMappingIsImmutableOnceStored(t *testing.T) {
	s := NewSession()
	sel := make(map[string]string, schema.Width)
	for _, f := range schema.Fields {
		sel[f] = ""
	}
	sel[schema.FieldEmail] = "Email"
	id, err := s.CreateMapping(sel, nil)
	if err != nil {
		t.Fatalf("CreateMapping: %v", err)
	}
	sel[schema.FieldEmail] = "Changed"
	rec, ok := s.Mapping(id)
	if !ok {
		t.Fatalf("mapping not found")
	}
	if rec.Fields[schema.FieldEmail] != "Email" {
		t.Fatalf("stored mapping mutated: %v", rec.Fields)
	}
}

func TestValidateEmptyRows(t *testing.T) {
	s := NewSession()
	if _, err := s.Validate(nil); kindOf(t, err) != KindInvalidInput {
		t.Fatalf("want InvalidInput")
	}
}

func TestSessionsDoNotShareMappings(t *testing.T) {
	sel := make(map[string]string, schema.Width)
	for _, f := range schema.Fields {
		sel[f] = ""
	}
	a, b := NewSession(), NewSession()
	id, err := a.CreateMapping(sel, nil)
	if err != nil {
		t.Fatalf("CreateMapping: %v", err)
	}
	if _, ok := b.Mapping(id); ok {
		t.Fatalf("mapping leaked across sessions")
	}
	if _, ok := a.Mapping(id); !ok {
		t.Fatalf("mapping missing from owning session")
	}
}
