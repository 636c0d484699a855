package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFiltersBlankRows(t *testing.T) {
	in := strings.Join([]string{
		"Name,Email",
		"Jane,jane@x.io",
		",",
		"   ,",
		"Bob,bob@y.io",
		"",
	}, "\n")
	tab, err := Read(strings.NewReader(in), ',')
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tab.Headers) != 2 {
		t.Fatalf("headers=%v", tab.Headers)
	}
	if len(tab.Rows) != 2 {
		t.Fatalf("rows=%v want 2 after blank filtering", tab.Rows)
	}
	if tab.Rows[1][0] != "Bob" {
		t.Fatalf("rows=%v", tab.Rows)
	}
}

func TestReadRaggedRows(t *testing.T) {
	tab, err := Read(strings.NewReader("a,b,c\n1,2\n"), ',')
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tab.Rows) != 1 || len(tab.Rows[0]) != 2 {
		t.Fatalf("rows=%v", tab.Rows)
	}
}

func TestReadEmptyInput(t *testing.T) {
	tab, err := Read(strings.NewReader(""), ',')
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tab.Headers) != 0 || len(tab.Rows) != 0 {
		t.Fatalf("table=%+v want empty", tab)
	}
}

func TestReadFileSniffsTSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.tsv")
	if err := os.WriteFile(path, []byte("a\tb\n1\t2\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tab, err := ReadFile(path, 0)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(tab.Headers) != 2 || tab.Headers[1] != "b" {
		t.Fatalf("headers=%v", tab.Headers)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	headers := []string{"Name", "Email"}
	rows := [][]string{{"Jane", "jane@x.io"}, {"Bob, Jr.", "bob@y.io"}}
	if err := Write(&buf, headers, rows); err != nil {
		t.Fatalf("Write: %v", err)
	}
	tab, err := Read(&buf, ',')
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tab.Rows[1][0] != "Bob, Jr." {
		t.Fatalf("quoting lost: %v", tab.Rows)
	}
}
