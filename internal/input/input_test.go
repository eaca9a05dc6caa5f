package input

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	got, err := ReadLines(strings.NewReader("tomorrow\n\n  next fri  \n# comment\n3 days\n"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"tomorrow", "next fri", "3 days"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines = %q, want %q", got, want)
	}
}

func TestExpandValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dates.txt")
	if err := os.WriteFile(path, []byte("in 2 hours\nfriday 15:30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		values []string
		stdin  string
		want   []string
	}{
		{"plain", []string{"today", "tmr"}, "", []string{"today", "tmr"}},
		{"stdin", []string{"-"}, "now\nnext week\n", []string{"now", "next week"}},
		{"file", []string{"@" + path}, "", []string{"in 2 hours", "friday 15:30"}},
		{"mixed", []string{"today", "@" + path, "-"}, "tmr", []string{"today", "in 2 hours", "friday 15:30", "tmr"}},
		{"bare at sign", []string{"@"}, "", []string{"@"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandValues(tt.values, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("ExpandValues: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandValues = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandValuesErrors(t *testing.T) {
	if _, err := ExpandValues([]string{"-", "-"}, strings.NewReader("x")); err == nil {
		t.Error("expected error for repeated stdin")
	}
	missing := filepath.Join(t.TempDir(), "missing.txt")
	if _, err := ExpandValues([]string{"@" + missing}, strings.NewReader("")); err == nil {
		t.Error("expected error for missing file")
	}
}
