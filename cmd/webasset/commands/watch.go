package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/webasset/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the asset cache current while configs change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("metrics-addr")
			events, _ := cmd.Flags().GetBool("events")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Options:     options(cmd),
				MetricsAddr: addr,
				Events:      events,
			})
		},
	}
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address")
	cmd.Flags().BoolP("events", "e", false, "Reload on file system events in addition to polling")
	return cmd
}
