package config

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Global{SampleSize: 25, Delimiter: ";", ServeAddr: ":9000", OutputDir: "/tmp/out"}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	// Nonexistent explicit file: read is optional, defaults apply.
	path := filepath.Join(t.TempDir(), "missing.yaml")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.SampleSize != 10 {
		t.Errorf("SampleSize = %d, want default 10", c.SampleSize)
	}
	if c.ServeAddr != ":8090" {
		t.Errorf("ServeAddr = %q, want default :8090", c.ServeAddr)
	}
}

func TestParseDelimiter(t *testing.T) {
	cases := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", 0, false},
		{",", ',', false},
		{";", ';', false},
		{"tab", '\t', false},
		{"\t", '\t', false},
		{"|", 0, true},
	}
	for _, c := range cases {
		got, err := ParseDelimiter(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseDelimiter(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDelimiter(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDelimiter(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
