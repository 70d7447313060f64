package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marceloribeiro/orbin/internal/infra/config"
)

// globalSettings holds the loaded settings for all commands
var globalSettings config.Settings

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbin",
		Short: "Orbin - generators and utilities for building web applications",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load settings before any command runs
			// Priority: .env > environment > defaults
			globalSettings = config.Load()
			InitGlobalLogger(os.Getenv("ORBIN_LOG_LEVEL"))
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newDBCmd())
	cmd.AddCommand(newGreetCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
