package combine

import (
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	cases := []struct {
		first, last, middle string
		want                string
	}{
		{"John", "Smith", "Michael", "John Michael Smith"},
		{"John", "Smith", "", "John Smith"},
		{"John", "", "", "John"},
		{"  John ", " Smith ", "", "John Smith"},
		{"", "", "", ""},
	}
	for _, tc := range cases {
		if got := Name(tc.first, tc.last, tc.middle); got != tc.want {
			t.Fatalf("Name(%q,%q,%q)=%q want %q", tc.first, tc.last, tc.middle, got, tc.want)
		}
	}
}

func TestSplitName(t *testing.T) {
	for _, tc := range []struct {
		in                  string
		first, middle, last string
	}{
		{"Cher", "Cher", "", ""},
		{"John Smith", "John", "", "Smith"},
		{"John Michael Smith", "John", "Michael", "Smith"},
		{"Anna Maria del Rio", "Anna", "Maria del", "Rio"},
		{"", "", "", ""},
	} {
		f, m, l := SplitName(tc.in)
		if f != tc.first || m != tc.middle || l != tc.last {
			t.Fatalf("SplitName(%q)=(%q,%q,%q) want (%q,%q,%q)", tc.in, f, m, l, tc.first, tc.middle, tc.last)
		}
	}
}

func TestAddress(t *testing.T) {
	got := Address("123 Main St", "Apt 4", "New York", "NY", "10001", "USA")
	want := "123 Main St, Apt 4, New York, NY 10001, USA"
	if got != want {
		t.Fatalf("Address=%q want %q", got, want)
	}
	for _, frag := range []string{"123 Main St", "Apt 4", "New York", "NY 10001"} {
		if !strings.Contains(got, frag) {
			t.Fatalf("Address missing %q: %q", frag, got)
		}
	}
}

func TestAddressOmitsAbsentParts(t *testing.T) {
	if got := Address("5 High St", "", "Leeds", "", "", "UK"); got != "5 High St, Leeds, UK" {
		t.Fatalf("Address=%q", got)
	}
	// State and postal are one unit; either half may be absent.
	if got := Address("", "", "", "NY", "", ""); got != "NY" {
		t.Fatalf("Address=%q want NY", got)
	}
	if got := Address("", "", "", "", "10001", ""); got != "10001" {
		t.Fatalf("Address=%q want 10001", got)
	}
	if got := Address("", "", "", "", "", ""); got != "" {
		t.Fatalf("Address=%q want empty", got)
	}
}

// The reverse parser is advisory: it must not fail, and must recover the
// street when street+city+state+postal+country are supplied. Other components
// are allowed to be lossy.
func TestParseAddressRecoversStreet(t *testing.T) {
	full := Address("123 Main St", "", "New York", "NY", "10001", "USA")
	p := ParseAddress(full)
	if p.Street != "123 Main St" {
		t.Fatalf("ParseAddress(%q).Street=%q", full, p.Street)
	}
	if p.State != "NY" || p.Postal != "10001" {
		t.Fatalf("state/postal not split: %+v", p)
	}
}

func TestParseAddressUnitSegment(t *testing.T) {
	p := ParseAddress("12 Oak Ave, Apt 9, Salem")
	if p.Apartment != "Apt 9" || p.City != "Salem" {
		t.Fatalf("unexpected parse: %+v", p)
	}
}

func TestParseAddressEmpty(t *testing.T) {
	p := ParseAddress("")
	if p != (ParsedAddress{}) {
		t.Fatalf("ParseAddress(\"\")=%+v want zero", p)
	}
}
