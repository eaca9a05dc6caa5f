package cmd

import (
	"fmt"

	"github.com/marcus/due/internal/duedate"
	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:     "formats",
	Aliases: []string{"grammar"},
	Short:   "List the accepted due date formats",
	GroupID: "core",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput() {
			return output.JSON(duedate.Shapes())
		}

		md := duedate.Reference()
		raw, _ := cmd.Flags().GetBool("raw")
		if raw {
			fmt.Print(md)
			return nil
		}

		rendered, err := output.RenderMarkdown(md)
		if err != nil {
			// Fall back to the plain markdown
			fmt.Print(md)
			return nil
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	formatsCmd.Flags().Bool("raw", false, "print markdown without rendering")
	rootCmd.AddCommand(formatsCmd)
}
