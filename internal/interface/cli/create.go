package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/marceloribeiro/orbin/internal/generator"
)

// newCreateCmd creates the create command
func newCreateCmd() *cobra.Command {
	var (
		dir    string
		module string
	)

	cmd := &cobra.Command{
		Use:   "create <app_name>",
		Short: "Create a new orbin application",
		Long: `Create a new orbin application with the standard directory structure:
an HTTP server entry point, handlers, models, per-environment database
configuration and a migrations directory.`,
		Example: `  # Create an app in the current directory
  orbin create blog

  # Create an app under a workspace with a full module path
  orbin create blog --dir ~/src --module github.com/acme/blog`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := generator.NewAppGenerator(afero.NewOsFs(), cmd.OutOrStdout(), args[0], dir, module)
			if err != nil {
				return err
			}
			GetLogger().Debug("generating application at %s", gen.AppPath())
			return gen.Generate()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "target directory (defaults to current directory)")
	cmd.Flags().StringVar(&module, "module", "", "Go module path of the new app (defaults to the app name)")
	return cmd
}
