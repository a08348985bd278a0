// Package commands implements the CLI commands for webasset.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/webasset/internal/app"
	"go.trai.ch/webasset/internal/build"
)

// CLI represents the command line interface for webasset.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "webasset",
		Short:         "Filter, cache and resolve web assets declared in asset configs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("root", "r", "", "Web application root directory")
	flags.String("config-dir", "", "Asset config directory relative to the root")
	flags.String("cache-dir", "", "Cache directory relative to the root")
	flags.String("suffix", "", "File suffix of asset config files")
	flags.StringP("settings", "s", "", "Settings file (default webasset.yaml)")
	flags.Bool("verbose", false, "Enable debug logging")
	flags.Bool("json-logs", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newWarmCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newIDsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// options reads the persistent flags shared by every command.
func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	root, _ := flags.GetString("root")
	configDir, _ := flags.GetString("config-dir")
	cacheDir, _ := flags.GetString("cache-dir")
	suffix, _ := flags.GetString("suffix")
	settings, _ := flags.GetString("settings")
	verbose, _ := flags.GetBool("verbose")
	jsonLogs, _ := flags.GetBool("json-logs")

	return app.Options{
		SettingsFile: settings,
		Root:         root,
		ConfigDir:    configDir,
		CacheDir:     cacheDir,
		Suffix:       suffix,
		Verbose:      verbose,
		JSONLogs:     jsonLogs,
	}
}
