package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marceloribeiro/orbin/internal/buildinfo"
)

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show orbin version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "orbin %s\n", buildinfo.GetVersion())
			return nil
		},
	}
}
