// Package cli implements tripctl, the operator command line for the trip
// planner: schema migrations, offline trip scoring and development tokens.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "tripctl" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Trip planner operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newScoreCmd(),
		newTokenCmd(),
	)

	return root
}
