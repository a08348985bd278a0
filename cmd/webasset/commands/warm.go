package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/webasset/internal/app"
)

func (c *CLI) newWarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warm [ids...]",
		Short: "Filter and cache the assets of the given ids and print them",
		Long: "Loads every asset config, filters and caches the assets of the given ids " +
			"(all ids when none are given) and prints the resolved tags per locale.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locales, _ := cmd.Flags().GetStringSlice("locale")
			asJSON, _ := cmd.Flags().GetBool("json")
			keep, _ := cmd.Flags().GetBool("keep-cache")
			return c.app.Warm(cmd.Context(), app.WarmOptions{
				Options:   options(cmd),
				IDs:       args,
				Locales:   locales,
				JSON:      asJSON,
				KeepCache: keep,
			})
		},
	}
	cmd.Flags().StringSliceP("locale", "l", nil, "Locales to resolve (default from settings)")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	cmd.Flags().BoolP("keep-cache", "k", false, "Keep the filtered assets on disk")
	return cmd
}
