package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/due/pkg/preview"
	"github.com/spf13/cobra"
)

var tryCmd = &cobra.Command{
	Use:     "try [expression...]",
	Short:   "Preview due dates live while typing",
	GroupID: "interactive",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := preview.New(clock(), strings.Join(args, " "))
		final, err := tea.NewProgram(m).Run()
		if err != nil {
			return fmt.Errorf("run preview: %w", err)
		}

		if fm, ok := final.(preview.Model); ok {
			if due, ok := fm.Due(); ok {
				fmt.Println(due)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tryCmd)
}
