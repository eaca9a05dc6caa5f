package cmd

import (
	"fmt"
	"runtime"

	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Show version",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput() {
			return output.JSON(map[string]string{
				"version": versionStr,
				"go":      runtime.Version(),
			})
		}
		short, _ := cmd.Flags().GetBool("short")
		if short {
			fmt.Print(versionStr)
			return nil
		}
		fmt.Printf("due version %s\n", versionStr)
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "print only the version")
	rootCmd.AddCommand(versionCmd)
}
