package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/BilliardBookingService/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, *configPath, func(m *migrations.Migrator) error {
				if err := m.Up(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, *configPath, func(m *migrations.Migrator) error {
				return m.Status(cmd.Context())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, *configPath, func(m *migrations.Migrator) error {
				v, err := m.Version(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", v)
				return nil
			})
		},
	})

	return cmd
}

func withMigrator(cmd *cobra.Command, configPath string, fn func(m *migrations.Migrator) error) error {
	a, err := newApp(cmd.Context(), configPath, false)
	if err != nil {
		return err
	}
	defer a.Close()

	migrator, err := migrations.NewMigrator(a.db)
	if err != nil {
		return err
	}
	return fn(migrator)
}
