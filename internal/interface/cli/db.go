package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/marceloribeiro/orbin/internal/db"
)

// newDBCmd creates the db command group
func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the application database",
		Long: `Manage the PostgreSQL database of the current orbin application.
The connection URL is resolved from DATABASE_URL (or TEST_DATABASE_URL in
test mode), falling back to config/database.yml.`,
	}

	cmd.AddCommand(newDBCreateCmd())
	cmd.AddCommand(newDBMigrateCmd())
	cmd.AddCommand(newDBStatusCmd())
	cmd.AddCommand(newDBDropCmd())
	return cmd
}

func newDBManager(cmd *cobra.Command) (*db.Manager, error) {
	url, err := globalSettings.ResolveDatabaseURL()
	if err != nil {
		return nil, err
	}
	return db.NewManager(url, cmd.OutOrStdout())
}

// newDBCreateCmd creates the db create command
func newDBCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create the database if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newDBManager(cmd)
			if err != nil {
				return err
			}
			return manager.Create(cmd.Context())
		},
	}
}

// newDBMigrateCmd creates the db migrate command
func newDBMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migrations (creates the database first when missing)",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newDBManager(cmd)
			if err != nil {
				return err
			}
			return manager.Migrate(cmd.Context(), afero.NewOsFs(), db.MigrationsDir)
		},
	}
}

// newDBStatusCmd creates the db status command
func newDBStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List applied and pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newDBManager(cmd)
			if err != nil {
				return err
			}
			statuses, err := manager.Status(cmd.Context(), afero.NewOsFs(), db.MigrationsDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(statuses) == 0 {
				fmt.Fprintln(out, "no migrations found")
				return nil
			}
			for _, s := range statuses {
				state := "pending"
				if s.Applied {
					state = "applied " + s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "%-8s %s_%s\n", state, s.Version, s.Name)
			}
			return nil
		},
	}
}

// newDBDropCmd creates the db drop command
func newDBDropCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newDBManager(cmd)
			if err != nil {
				return err
			}
			if !force {
				return fmt.Errorf("refusing to drop %q without --force", manager.Name())
			}
			GetLogger().Warn("dropping database %q", manager.Name())
			return manager.Drop(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "actually drop the database")
	return cmd
}
