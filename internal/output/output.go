// Package output provides styled terminal output helpers (success, error,
// warning, due date formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/due/internal/duedate"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as indented JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// JSONLine outputs data as a single line of JSON
func JSONLine(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// Error codes for structured JSON output. Parse failures use the
// duedate error kind code instead.
const (
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeConfigError  = "config_error"
	ErrCodeIOError      = "io_error"
)

// ErrorBody is the payload of a JSON error.
type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// JSONError outputs an error as JSON
func JSONError(code, message string) {
	JSONErrorWithDetails(code, message, nil)
}

// JSONErrorWithDetails outputs an error as JSON with additional context
func JSONErrorWithDetails(code, message string, details map[string]interface{}) {
	data, _ := json.Marshal(map[string]ErrorBody{
		"error": {Code: code, Message: message, Details: details},
	})
	fmt.Println(string(data))
}

// ErrorCode returns the structured code for err: the duedate kind code for
// parse errors, otherwise fallback.
func ErrorCode(err error, fallback string) string {
	if kind, ok := duedate.KindOf(err); ok {
		return kind.Code()
	}
	return fallback
}

// FormatDueDate renders a due date, highlighting it when overdue at now.
func FormatDueDate(d duedate.DueDate, now time.Time) string {
	if d.IsOverdue(now) {
		return overdueStyle.Render(d.String() + " (overdue)")
	}
	return dueStyle.Render(d.String())
}

// FormatShape renders a shape name for --explain output.
func FormatShape(shape string) string {
	return subtleStyle.Render("[" + shape + "]")
}

// FormatTimeUntil formats the distance from now to t as "in 3d", "2h ago"
// or "now" when under a minute.
func FormatTimeUntil(t, now time.Time) string {
	diff := t.Sub(now)
	future := diff >= 0
	if !future {
		diff = -diff
	}

	var amount string
	switch {
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		amount = fmt.Sprintf("%dm", int(diff.Minutes()))
	case diff < 24*time.Hour:
		amount = fmt.Sprintf("%dh", int(diff.Hours()))
	case diff < 14*24*time.Hour:
		amount = fmt.Sprintf("%dd", int(diff.Hours()/24))
	default:
		amount = fmt.Sprintf("%dw", int(diff.Hours()/(24*7)))
	}

	if future {
		return "in " + amount
	}
	return amount + " ago"
}

// StatusBadge returns "✓ ok" or "✗ error", styled.
func StatusBadge(ok bool) string {
	if ok {
		return successStyle.Render("✓ ok")
	}
	return errorStyle.Render("✗ error")
}

// Title renders a bold heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Truncate shortens s to width display cells, ANSI-aware.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
