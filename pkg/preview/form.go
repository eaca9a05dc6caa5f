package preview

import (
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/marcus/due/internal/duedate"
)

// PromptState holds the bound value of the due date prompt.
type PromptState struct {
	Form  *huh.Form
	Value string
	now   func() time.Time
}

// NewPromptState builds a single-field form that rejects anything that is
// not a valid, non-past due date.
func NewPromptState(now func() time.Time, title string) *PromptState {
	ps := &PromptState{now: now}
	if title == "" {
		title = "Due date"
	}
	ps.Form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("e.g. tomorrow, next fri, in 2 hours, 2026-03-01 09:00").
				Value(&ps.Value).
				Placeholder("next friday 15:30").
				Validate(ps.validate),
		),
	).WithTheme(huh.ThemeDracula())
	return ps
}

func (ps *PromptState) validate(s string) error {
	if strings.TrimSpace(s) == "" {
		return duedate.ErrEmptyInput
	}
	_, err := duedate.ParseFrom(s, ps.now())
	return err
}

// Run shows the form and returns the resolved due date.
func (ps *PromptState) Run() (duedate.DueDate, error) {
	if err := ps.Form.Run(); err != nil {
		return "", err
	}
	return ps.Resolve()
}

// Resolve parses the bound value against the reference instant.
func (ps *PromptState) Resolve() (duedate.DueDate, error) {
	return duedate.ParseFrom(ps.Value, ps.now())
}
