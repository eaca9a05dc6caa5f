package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/marcus/due/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Friday, local time
const testNow = "2026-02-20T10:30"

// cli runs root commands against an isolated config directory.
type cli struct {
	t     *testing.T
	stdin string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv(config.EnvConfigDir, t.TempDir())
	for _, k := range []string{config.EnvOutput, config.EnvLogLevel, config.EnvLogFormat, config.EnvLogFile, config.EnvNow} {
		t.Setenv(k, "")
	}
	return &cli{t: t}
}

// run executes args and returns everything written to stdout.
func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(c.stdin))

	oldOut := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		c.t.Fatal(err)
	}
	os.Stdout = w

	runErr := rootCmd.Execute()

	w.Close()
	os.Stdout = oldOut

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), runErr
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestParseCommand(t *testing.T) {
	c := newCLI(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"parse", "--now", testNow, "tomorrow"}, "2026-02-21\n"},
		{[]string{"parse", "--now", testNow, "next", "friday", "15:30"}, "2026-02-27 15:30\n"},
		{[]string{"p", "--now", testNow, "in 1 day 3 hours"}, "2026-02-21 13:30\n"},
		{[]string{"parse", "--now", testNow, "  TODAY "}, "2026-02-20\n"},
	}
	for _, tt := range tests {
		got, err := c.run(tt.args...)
		if err != nil {
			t.Errorf("%v: unexpected error: %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v: got %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestParseExplain(t *testing.T) {
	c := newCLI(t)
	got, err := c.run("parse", "--now", testNow, "--explain", "tmr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "2026-02-21") || !strings.Contains(got, "[tomorrow]") {
		t.Errorf("explain output = %q", got)
	}
}

func TestParseJSON(t *testing.T) {
	c := newCLI(t)
	got, err := c.run("parse", "--now", testNow, "--json", "in 2 hours")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res parseResult
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	if res.Due != "2026-02-20 12:30" || res.Shape != "in-offset" || !res.HasTime {
		t.Errorf("result = %+v", res)
	}
	if res.Input != "in 2 hours" {
		t.Errorf("input = %q", res.Input)
	}
}

func TestParseErrors(t *testing.T) {
	c := newCLI(t)

	got, err := c.run("parse", "--now", testNow, "yesterday")
	var rep *reportedError
	if !errors.As(err, &rep) {
		t.Fatalf("expected reported error, got %v", err)
	}
	if !strings.Contains(got, "in the past") {
		t.Errorf("output = %q", got)
	}

	got, err = c.run("parse", "--now", testNow, "--json", "someday")
	if err == nil {
		t.Fatal("expected error")
	}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(got), &body); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	if body.Error.Code != "unrecognized_format" {
		t.Errorf("code = %q", body.Error.Code)
	}

	if _, err := c.run("parse"); err == nil {
		t.Error("expected error with no arguments")
	}
}

func TestNowFromEnvironment(t *testing.T) {
	c := newCLI(t)
	t.Setenv(config.EnvNow, "2026-02-20 10:30")

	got, err := c.run("parse", "next mon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-02-23\n" {
		t.Errorf("got %q", got)
	}

	// The flag wins over the environment
	got, err = c.run("parse", "--now", "2026-03-02T08:00", "tomorrow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-03-03\n" {
		t.Errorf("got %q", got)
	}

	t.Setenv(config.EnvNow, "last tuesday")
	if _, err := c.run("parse", "today"); err == nil {
		t.Error("expected error for invalid DUE_NOW")
	}
}

func TestInvalidNowFlag(t *testing.T) {
	c := newCLI(t)
	if _, err := c.run("parse", "--now", "soon", "today"); err == nil {
		t.Error("expected error for invalid --now")
	}
}

func TestOutputFromEnvironment(t *testing.T) {
	c := newCLI(t)
	t.Setenv(config.EnvOutput, "json")

	got, err := c.run("parse", "--now", testNow, "today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `"due": "2026-02-20"`) {
		t.Errorf("expected JSON output, got %q", got)
	}
}

func TestCheckCommand(t *testing.T) {
	c := newCLI(t)

	got, err := c.run("check", "--now", testNow, "tmr", "3 fortnights", "next fri")
	if err == nil {
		t.Fatal("expected error when an expression fails")
	}
	var rep *reportedError
	if !errors.As(err, &rep) {
		t.Errorf("error should be reported, got %v", err)
	}
	for _, want := range []string{"2026-02-21", "unsupported time unit", "2026-02-27", "1 of 3 expressions failed"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestCheckStdin(t *testing.T) {
	c := newCLI(t)
	c.stdin = "tmr\n\n# skipped\nin 3 days\n"

	got, err := c.run("check", "--now", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %q", got)
	}
	if !strings.Contains(lines[1], "2026-02-23 10:30") {
		t.Errorf("row 2 = %q", lines[1])
	}
}

func TestCheckJSONLines(t *testing.T) {
	c := newCLI(t)
	got, err := c.run("check", "--now", testNow, "--json", "today", "13:00", "25:00")
	if err == nil {
		t.Fatal("expected error for failing expression")
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 JSON lines, got %q", got)
	}
	var rows []checkRow
	for _, line := range lines {
		var r checkRow
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		rows = append(rows, r)
	}
	if rows[0].Due != "2026-02-20" || rows[1].Due != "2026-02-20 13:00" {
		t.Errorf("rows = %+v", rows)
	}
	if rows[2].Error == nil || rows[2].Error.Code != "invalid_date_or_time" {
		t.Errorf("row 3 error = %+v", rows[2].Error)
	}
}

func TestCheckEmptyInput(t *testing.T) {
	c := newCLI(t)
	c.stdin = "\n# nothing\n"
	if _, err := c.run("check", "-"); err == nil {
		t.Error("expected error for no expressions")
	}
}

func TestOverdueCommand(t *testing.T) {
	c := newCLI(t)

	got, err := c.run("overdue", "--now", testNow, "2026-02-19")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "(overdue)") {
		t.Errorf("output = %q", got)
	}

	_, err = c.run("overdue", "--now", testNow, "--exit-code", "2026-02-20", "09:00")
	if !errors.Is(err, errOverdue) {
		t.Errorf("--exit-code: got %v, want errOverdue", err)
	}

	got, err = c.run("overdue", "--now", testNow, "--exit-code", "2026-02-20")
	if err != nil {
		t.Fatalf("today should not be overdue: %v", err)
	}
	if !strings.Contains(got, "not overdue") {
		t.Errorf("output = %q", got)
	}

	if _, err := c.run("overdue", "--now", testNow, "next week"); err == nil {
		t.Error("expected error for non-normalized input")
	}
}

func TestUntilCommand(t *testing.T) {
	c := newCLI(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"until", "--now", testNow, "2026-02-23"}, "in 2d"},
		{[]string{"until", "--now", testNow, "2026-02-20", "08:30"}, "2h ago"},
		{[]string{"until", "--now", testNow, "next", "friday", "17:00"}, "in 7d"},
		{[]string{"until", "--now", testNow, "in 45 minutes"}, "in 45m"},
	}
	for _, tt := range tests {
		got, err := c.run(tt.args...)
		if err != nil {
			t.Errorf("%v: unexpected error: %v", tt.args, err)
			continue
		}
		if !strings.Contains(got, tt.want) {
			t.Errorf("%v: got %q, want it to contain %q", tt.args, got, tt.want)
		}
	}

	got, err := c.run("until", "--now", testNow, "--json", "2026-02-20", "08:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res untilResult
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	if !res.Overdue || res.Seconds != -7200 {
		t.Errorf("result = %+v", res)
	}
}

func TestFormatsCommand(t *testing.T) {
	c := newCLI(t)

	got, err := c.run("formats", "--raw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "# Due date formats") {
		t.Errorf("raw output = %q", got)
	}

	got, err = c.run("formats", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var shapes []map[string]string
	if err := json.Unmarshal([]byte(got), &shapes); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(shapes) == 0 || shapes[0]["name"] != "now" {
		t.Errorf("shapes = %v", shapes)
	}

	got, err = c.run("formats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Due date formats") || !strings.Contains(got, "friday") {
		t.Errorf("rendered output = %q", got)
	}
}

func TestConfigCommands(t *testing.T) {
	c := newCLI(t)

	if _, err := c.run("config", "set", "output", "json"); err != nil {
		t.Fatalf("config set: %v", err)
	}

	got, err := c.run("config", "get", "output")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if !strings.Contains(got, "json") {
		t.Errorf("config get output = %q", got)
	}

	// Stored output mode applies to other commands
	got, err = c.run("parse", "--now", testNow, "today")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.Contains(got, `"shape": "today"`) {
		t.Errorf("expected JSON after config set, got %q", got)
	}

	if _, err := c.run("config", "unset", "output"); err != nil {
		t.Fatalf("config unset: %v", err)
	}
	got, err = c.run("config", "list")
	if err != nil {
		t.Fatalf("config list: %v", err)
	}
	if !strings.Contains(got, "output = text") || !strings.Contains(got, "log.level = warn") {
		t.Errorf("config list = %q", got)
	}

	got, err = c.run("config", "set", "colour", "blue")
	if err == nil {
		t.Error("expected error for unknown key")
	}
	if !strings.Contains(got, "Valid keys:") {
		t.Errorf("unknown key output = %q", got)
	}

	if _, err := c.run("config", "set", "log.level", "loud"); err == nil {
		t.Error("expected error for invalid value")
	}

	got, err = c.run("config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(got), "config.json") {
		t.Errorf("config path = %q", got)
	}
}

func TestVersionCommand(t *testing.T) {
	c := newCLI(t)
	SetVersion("v1.2.3")

	got, err := c.run("version", "--short")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "v1.2.3" {
		t.Errorf("got %q", got)
	}

	got, err = c.run("version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "due version v1.2.3\n" {
		t.Errorf("got %q", got)
	}
}

func TestCommandGroups(t *testing.T) {
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		if sub.GroupID == "" {
			t.Errorf("command %q has no group", sub.Name())
		}
	}
}
