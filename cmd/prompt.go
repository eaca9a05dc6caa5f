package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/marcus/due/internal/output"
	"github.com/marcus/due/pkg/preview"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Ask for a due date until a valid one is entered",
	Long: `Shows an input that validates as you type and prints the resolved due
date. Useful in scripts: DUE=$(due prompt --title "Ship by?")`,
	GroupID: "interactive",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		ps := preview.NewPromptState(clock(), title)

		due, err := ps.Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return silent(err)
		}
		if err != nil {
			return fail(output.ErrCodeInvalidInput, err)
		}

		if jsonOutput() {
			return output.JSON(parseResult{Input: ps.Value, Due: due, HasTime: due.HasTime()})
		}
		fmt.Println(due)
		return nil
	},
}

func init() {
	promptCmd.Flags().String("title", "Due date", "prompt title")
	rootCmd.AddCommand(promptCmd)
}
