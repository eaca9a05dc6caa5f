package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marcus/due/internal/config"
	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage due configuration",
	GroupID: "system",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]

		dir, err := config.Dir()
		if err != nil {
			return fail(output.ErrCodeConfigError, err)
		}
		err = config.Update(dir, func(c *config.Config) error {
			return c.Set(key, val)
		})
		if err != nil {
			ferr := fail(output.ErrCodeConfigError, err)
			if !jsonOutput() && errors.Is(err, config.ErrUnknownKey) {
				fmt.Println("Valid keys:", strings.Join(config.Keys(), ", "))
			}
			return ferr
		}

		if jsonOutput() {
			return output.JSON(map[string]string{"key": key, "value": val})
		}
		output.Success("Set %s = %s", key, val)
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return fail(output.ErrCodeConfigError, err)
		}
		if err := config.Update(dir, func(c *config.Config) error {
			return c.Set(args[0], "")
		}); err != nil {
			return fail(output.ErrCodeConfigError, err)
		}
		if !jsonOutput() {
			output.Success("Unset %s", args[0])
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get the effective value of a config key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		val, err := appConfig.Get(args[0])
		if err != nil {
			return fail(output.ErrCodeConfigError, err)
		}
		if jsonOutput() {
			return output.JSON(map[string]string{"key": args[0], "value": val})
		}
		fmt.Println(val)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List effective config values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make(map[string]string)
		for _, k := range config.Keys() {
			values[k], _ = appConfig.Get(k)
		}
		if jsonOutput() {
			return output.JSON(values)
		}
		for _, k := range config.Keys() {
			fmt.Printf("%s = %s\n", k, values[k])
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return fail(output.ErrCodeConfigError, err)
		}
		fmt.Println(config.Path(dir))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
