package commands

import "github.com/spf13/cobra"

func (c *CLI) newIDsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ids",
		Short: "List the ids declared by the asset configs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.IDs(cmd.Context(), options(cmd))
		},
	}
}
