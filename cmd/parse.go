package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/marcus/due/internal/duedate"
	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

// parseResult is the JSON shape of a resolved expression.
type parseResult struct {
	Input   string          `json:"input"`
	Due     duedate.DueDate `json:"due"`
	Shape   string          `json:"shape"`
	HasTime bool            `json:"has_time"`
}

var parseCmd = &cobra.Command{
	Use:     "parse <expression...>",
	Aliases: []string{"p"},
	Short:   "Resolve a due date expression",
	Long: `Resolves a natural-language due date and prints it as YYYY-MM-DD or
YYYY-MM-DD HH:MM. Multiple arguments are joined with spaces, so quoting is
optional.`,
	Example: `  due parse tomorrow
  due parse next friday 15:30
  due parse --explain in 1 day 3 hours
  due parse --now 2026-02-20T10:30 "next mon"`,
	GroupID: "core",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := strings.Join(args, " ")
		res, err := resolve(expr, referenceNow())
		if err != nil {
			return failParse(err)
		}

		if jsonOutput() {
			return output.JSON(parseResult{
				Input:   res.Input,
				Due:     res.Due,
				Shape:   res.Shape,
				HasTime: res.Due.HasTime(),
			})
		}

		explain, _ := cmd.Flags().GetBool("explain")
		if explain {
			fmt.Printf("%s  %s\n", res.Due, output.FormatShape(res.Shape))
			return nil
		}
		fmt.Println(res.Due)
		return nil
	},
}

// resolve parses expr at now and logs the outcome at debug level.
func resolve(expr string, now time.Time) (duedate.Result, error) {
	res, err := duedate.Explain(expr, now)
	if err != nil {
		slog.Debug("parse failed", "input", expr, "now", now.Format(time.RFC3339),
			"code", output.ErrorCode(err, "unknown"), "err", err)
		return res, err
	}
	slog.Debug("parsed", "input", expr, "now", now.Format(time.RFC3339),
		"shape", res.Shape, "due", res.Due.String())
	return res, nil
}

func init() {
	parseCmd.Flags().Bool("explain", false, "show which grammar shape matched")
	rootCmd.AddCommand(parseCmd)
}
