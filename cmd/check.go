package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcus/due/internal/duedate"
	"github.com/marcus/due/internal/input"
	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

const maxInputWidth = 32

// checkRow is one line of `due check` output.
type checkRow struct {
	Input string            `json:"input"`
	Due   duedate.DueDate   `json:"due,omitempty"`
	Shape string            `json:"shape,omitempty"`
	Error *output.ErrorBody `json:"error,omitempty"`
}

func (r checkRow) ok() bool { return r.Error == nil }

// checkExpressions resolves every expression against the same instant.
func checkExpressions(exprs []string, now time.Time) []checkRow {
	rows := make([]checkRow, 0, len(exprs))
	for _, expr := range exprs {
		res, err := resolve(expr, now)
		if err != nil {
			body := &output.ErrorBody{
				Code:    output.ErrorCode(err, output.ErrCodeInvalidInput),
				Message: err.Error(),
			}
			if hints := suggestions(err); len(hints) > 0 {
				body.Details = map[string]interface{}{"suggestions": hints}
			}
			rows = append(rows, checkRow{Input: expr, Error: body})
			continue
		}
		rows = append(rows, checkRow{Input: expr, Due: res.Due, Shape: res.Shape})
	}
	return rows
}

var checkCmd = &cobra.Command{
	Use:   "check [expression...|-|@file]",
	Short: "Resolve many expressions at once",
	Long: `Resolves each argument as a separate expression. Use - to read one
expression per line from stdin, or @path to read them from a file. Blank
lines and lines starting with # are skipped. With no arguments, stdin is read.

Exits non-zero when any expression fails.`,
	Example: `  due check tomorrow "next fri" "in 3 fortnights"
  printf 'tmr\n5pm\n' | due check
  due check --json @deadlines.txt`,
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"-"}
		}
		exprs, err := input.ExpandValues(args, cmd.InOrStdin())
		if err != nil {
			return fail(output.ErrCodeIOError, err)
		}
		if len(exprs) == 0 {
			return fail(output.ErrCodeInvalidInput, fmt.Errorf("no expressions to check"))
		}

		rows := checkExpressions(exprs, referenceNow())
		failed := 0
		for _, r := range rows {
			if !r.ok() {
				failed++
			}
		}

		if jsonOutput() {
			for _, r := range rows {
				if err := output.JSONLine(r); err != nil {
					return err
				}
			}
		} else {
			printCheckTable(rows)
		}

		if failed > 0 {
			err := fmt.Errorf("%d of %d expressions failed", failed, len(rows))
			if !jsonOutput() {
				output.Warning("%v", err)
			}
			return silent(err)
		}
		return nil
	},
}

func printCheckTable(rows []checkRow) {
	width := 0
	for _, r := range rows {
		if len(r.Input) > width {
			width = len(r.Input)
		}
	}
	if width > maxInputWidth {
		width = maxInputWidth
	}

	for _, r := range rows {
		in := output.PadRight(output.Truncate(r.Input, width), width)
		if r.ok() {
			fmt.Printf("%s  %s  %s\n", output.StatusBadge(true), in, r.Due)
		} else {
			msg := r.Error.Message
			if hints, ok := r.Error.Details["suggestions"].([]string); ok {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(hints, ", "))
			}
			fmt.Printf("%s  %s  %s\n", output.StatusBadge(false), in, msg)
		}
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
