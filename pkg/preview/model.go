// Package preview implements the interactive due date preview: a text input
// that re-parses on every keystroke, and a huh prompt that only accepts
// valid due dates.
package preview

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/due/internal/duedate"
)

// hintShapes are the shapes whose examples the view suggests.
var hintShapes = []string{"tomorrow", "next-weekday", "in-offset", "weekday-time", "compound-offset", "date-time"}

// Model is the bubbletea model for `due try`.
type Model struct {
	Input textinput.Model
	Now   func() time.Time

	Result   duedate.Result
	Err      error
	Width    int
	Accepted bool
	Quitting bool
}

// New creates a focused preview model. now supplies the reference instant
// for each parse.
func New(now func() time.Time, initial string) Model {
	ti := textinput.New()
	ti.Placeholder = "next friday 15:30"
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 40
	ti.SetValue(initial)
	ti.Focus()

	m := Model{Input: ti, Now: now}
	m.reparse()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.Valid() {
				m.Accepted = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	prev := m.Input.Value()
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if m.Input.Value() != prev {
		m.reparse()
	}
	return m, cmd
}

func (m *Model) reparse() {
	m.Result, m.Err = duedate.Explain(m.Input.Value(), m.Now())
}

// Valid reports whether the current input resolves to a due date.
func (m Model) Valid() bool {
	return m.Err == nil && m.Result.Due != ""
}

// Due returns the accepted due date, if any.
func (m Model) Due() (duedate.DueDate, bool) {
	if !m.Accepted {
		return "", false
	}
	return m.Result.Due, true
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting || m.Accepted {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Due date preview"))
	sb.WriteString("\n\n")
	sb.WriteString(m.Input.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.resultLine())
	sb.WriteString("\n\n")
	sb.WriteString(subtleStyle.Render("Try: " + strings.Join(hints(), ", ")))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("enter accept • esc quit"))

	box := boxStyle
	if m.Width > 4 {
		box = box.Width(m.Width - 4)
	}
	return box.Render(sb.String()) + "\n"
}

func (m Model) resultLine() string {
	switch {
	case strings.TrimSpace(m.Input.Value()) == "":
		return subtleStyle.Render("type a due date")
	case m.Err != nil:
		return errorStyle.Render("✗ " + m.Err.Error())
	default:
		return dueStyle.Render("✓ "+m.Result.Due.String()) + "  " +
			subtleStyle.Render("["+m.Result.Shape+"]")
	}
}

func hints() []string {
	examples := make(map[string]string)
	for _, s := range duedate.Shapes() {
		examples[s.Name] = s.Example
	}
	out := make([]string, 0, len(hintShapes))
	for _, name := range hintShapes {
		if ex, ok := examples[name]; ok {
			out = append(out, ex)
		}
	}
	return out
}
