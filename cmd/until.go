package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcus/due/internal/duedate"
	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

// untilResult is the JSON shape of `due until`.
type untilResult struct {
	Due     duedate.DueDate `json:"due"`
	Until   string          `json:"until"`
	Seconds int64           `json:"seconds"`
	Overdue bool            `json:"overdue"`
}

// dueInstant accepts a stored due date or, failing that, an expression.
func dueInstant(arg string, now time.Time) (duedate.DueDate, time.Time, error) {
	due := duedate.DueDate(arg)
	if t, err := due.Time(now.Location()); err == nil {
		return due, t, nil
	}
	res, err := resolve(arg, now)
	if err != nil {
		return "", time.Time{}, err
	}
	t, err := res.Due.Time(now.Location())
	return res.Due, t, err
}

var untilCmd = &cobra.Command{
	Use:   "until <due-date|expression>",
	Short: "Show the time remaining until a due date",
	Example: `  due until 2026-03-01
  due until next friday 17:00`,
	GroupID: "core",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := referenceNow()
		due, t, err := dueInstant(strings.Join(args, " "), now)
		if err != nil {
			return failParse(err)
		}

		rel := output.FormatTimeUntil(t, now)
		if jsonOutput() {
			return output.JSON(untilResult{
				Due:     due,
				Until:   rel,
				Seconds: int64(t.Sub(now) / time.Second),
				Overdue: due.IsOverdue(now),
			})
		}
		fmt.Printf("%s  %s\n", output.FormatDueDate(due, now), rel)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(untilCmd)
}
