package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/marcus/due/internal/config"
	"github.com/marcus/due/internal/logging"
	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

var (
	versionStr string

	nowFlag   nowValue
	jsonFlag  bool
	debugFlag bool

	appConfig *config.Config
	logCloser io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	versionStr = v
}

var rootCmd = &cobra.Command{
	Use:   "due",
	Short: "Natural-language due date parser",
	Long: `due - Resolve free-form due date phrases into normalized dates.

Accepts phrases like "tomorrow", "next fri", "in 2 hours", "friday 15:30" or
"2026-03-01 09:00" and prints "YYYY-MM-DD" or "YYYY-MM-DD HH:MM". Dates in the
past are rejected.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		var rep *reportedError
		if !errors.As(err, &rep) {
			output.Error("%v", err)
		}
		os.Exit(1)
	}
}

// setup loads config, installs the logger and resolves the reference
// instant before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fail(output.ErrCodeConfigError, fmt.Errorf("load config: %w", err))
	}
	appConfig = cfg

	closer, err := logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Debug:  debugFlag,
	})
	if err != nil {
		return fail(output.ErrCodeConfigError, err)
	}
	logCloser = closer

	if !nowFlag.set && cfg.Now != "" {
		if err := nowFlag.Set(cfg.Now); err != nil {
			return fail(output.ErrCodeInvalidInput, fmt.Errorf("%s: %w", config.EnvNow, err))
		}
	}
	return nil
}

// referenceNow returns the pinned reference instant, or the current time.
func referenceNow() time.Time {
	if nowFlag.set {
		return nowFlag.t
	}
	return time.Now()
}

// jsonOutput reports whether results should be printed as JSON.
func jsonOutput() bool {
	return jsonFlag || (appConfig != nil && appConfig.Output == "json")
}

// nameWithAliases returns "name, alias1, alias2" if aliases exist, else just "name"
func nameWithAliases(cmd *cobra.Command) string {
	if len(cmd.Aliases) > 0 {
		return cmd.Name() + ", " + strings.Join(cmd.Aliases, ", ")
	}
	return cmd.Name()
}

func init() {
	// Add custom template function for showing aliases
	cobra.AddTemplateFunc("nameWithAliases", nameWithAliases)
	cobra.AddTemplateFunc("add", func(a, b int) int { return a + b })

	// Custom usage template that shows aliases inline
	usageTemplate := `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

Available Commands:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad (nameWithAliases .) (add .NamePadding 8)}} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad (nameWithAliases .) (add .NamePadding 8)}} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

Additional Commands:{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad (nameWithAliases .) (add .NamePadding 8)}} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "interactive", Title: "Interactive Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")

	rootCmd.PersistentFlags().Var(&nowFlag, "now", `reference instant (RFC3339, "YYYY-MM-DD HH:MM" or "YYYY-MM-DDTHH:MM"; env DUE_NOW)`)
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "JSON output")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "debug logging to stderr")
}
