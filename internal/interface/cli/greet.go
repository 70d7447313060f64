package cli

import (
	"github.com/spf13/cobra"

	"github.com/marceloribeiro/orbin/pkg/greeting"
)

// newGreetCmd creates the greet command
func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a greeting",
		Example: `  # Fixed greeting
  orbin greet

  # Personalized greeting
  orbin greet Alice`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				greeting.HelloWorld()
				return nil
			}
			greeting.HelloWorldWithName(args[0])
			return nil
		},
	}
}
