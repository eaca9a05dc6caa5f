package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/due/internal/duedate"
	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

// overdueResult is the JSON shape of `due overdue`.
type overdueResult struct {
	Due     duedate.DueDate `json:"due"`
	Overdue bool            `json:"overdue"`
}

var overdueCmd = &cobra.Command{
	Use:   "overdue <due-date>",
	Short: "Report whether a stored due date has passed",
	Long: `Checks a normalized due date (YYYY-MM-DD or YYYY-MM-DD HH:MM) against the
reference instant. Dates without a time are overdue only once their day has
ended.`,
	Example: `  due overdue 2026-02-19
  due overdue 2026-02-20 09:00 --exit-code`,
	GroupID: "core",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := referenceNow()
		due := duedate.DueDate(strings.Join(args, " "))
		if _, err := due.Time(now.Location()); err != nil {
			return fail(output.ErrCodeInvalidInput, err)
		}

		overdue := due.IsOverdue(now)
		if jsonOutput() {
			if err := output.JSON(overdueResult{Due: due, Overdue: overdue}); err != nil {
				return err
			}
		} else if overdue {
			fmt.Println(output.FormatDueDate(due, now))
		} else {
			fmt.Printf("%s not overdue\n", output.FormatDueDate(due, now))
		}

		exitCode, _ := cmd.Flags().GetBool("exit-code")
		if exitCode && overdue {
			return silent(errOverdue)
		}
		return nil
	},
}

func init() {
	overdueCmd.Flags().Bool("exit-code", false, "exit with status 1 when overdue")
	rootCmd.AddCommand(overdueCmd)
}
