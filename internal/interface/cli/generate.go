package cli

import (
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/marceloribeiro/orbin/internal/generator"
)

// newGenerateCmd creates the generate command group
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g"},
		Short:   "Run a code generator",
		Example: `  # RESTful handler for an existing model
  orbin generate resource post

  # New SQL migration pair
  orbin g migration create_posts`,
	}

	cmd.AddCommand(newGenerateResourceCmd())
	cmd.AddCommand(newGenerateMigrationCmd())
	return cmd
}

// newGenerateResourceCmd creates the generate resource command
func newGenerateResourceCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "resource <model>",
		Short: "Generate a RESTful handler for an existing model",
		Long: `Generate a handler with the standard RESTful actions (index, show,
create, update, destroy) for a model that already exists under
internal/models. Run from the root of an orbin application.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := generator.NewResourceGenerator(afero.NewOsFs(), cmd.OutOrStdout(), args[0], "")
			if err != nil {
				return err
			}
			gen.Force = force
			return gen.Generate()
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing handler")
	return cmd
}

// newGenerateMigrationCmd creates the generate migration command
func newGenerateMigrationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migration <name>",
		Short: "Generate a timestamped SQL migration pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := generator.NewMigration(afero.NewOsFs(), cmd.OutOrStdout(), "", args[0], time.Now())
			return err
		},
	}
}
