package preview

import (
	"errors"
	"testing"

	"github.com/marcus/due/internal/duedate"
)

func TestPromptValidate(t *testing.T) {
	ps := NewPromptState(fixedNow, "")
	if ps.Form == nil {
		t.Fatal("form not built")
	}

	tests := []struct {
		in   string
		want error
	}{
		{"tomorrow", nil},
		{"next fri 09:00", nil},
		{"", duedate.ErrEmptyInput},
		{"   ", duedate.ErrEmptyInput},
		{"yesterday", duedate.ErrPastDueDate},
		{"someday", duedate.ErrUnrecognizedFormat},
	}
	for _, tt := range tests {
		err := ps.validate(tt.in)
		if tt.want == nil && err != nil {
			t.Errorf("validate(%q) = %v", tt.in, err)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("validate(%q) = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestPromptResolve(t *testing.T) {
	ps := NewPromptState(fixedNow, "When is it due?")
	ps.Value = "in 1 day 3 hours"
	due, err := ps.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if due != "2026-02-21 13:30" {
		t.Errorf("Resolve() = %q", due)
	}
}
