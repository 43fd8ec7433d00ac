package handlers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"preshub/internal/persistence"
)

// NewMigrateCmd creates the migrate command for database migrations
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
		Long: `Manage database schema migrations.

Subcommands:
  up       Apply all pending migrations
  status   Show migration status

The migration system tracks applied migrations in the schema_migrations table
and applies new migrations in sequential order.

Examples:
  # Apply all pending migrations
  preshub migrate up

  # Check migration status
  preshub migrate status`,
	}

	cmd.AddCommand(newMigrateUpCmd())
	cmd.AddCommand(newMigrateStatusCmd())

	return cmd
}

func newMigrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateUp(cmd.Context())
		},
	}
}

func newMigrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateStatus(cmd.Context())
		},
	}
}

func runMigrateUp(ctx context.Context) error {
	db, err := getDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	pgDB, ok := db.(*persistence.PostgresDB)
	if !ok {
		return fmt.Errorf("only PostgreSQL database is supported for migrations")
	}

	migrator := persistence.NewMigrationManager(pgDB)
	if err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println("All migrations applied successfully")
	return nil
}

func runMigrateStatus(ctx context.Context) error {
	db, err := getDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	pgDB, ok := db.(*persistence.PostgresDB)
	if !ok {
		return fmt.Errorf("only PostgreSQL database is supported for migrations")
	}

	migrator := persistence.NewMigrationManager(pgDB)
	status, err := migrator.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	if len(status) == 0 {
		fmt.Println("No migrations found")
		return nil
	}

	fmt.Printf("%-10s %-10s %s\n", "Version", "Status", "Description")
	pending := 0
	for _, m := range status {
		state := "pending"
		if m.Applied {
			state = "applied"
		} else {
			pending++
		}
		fmt.Printf("%-10d %-10s %s\n", m.Version, state, m.Description)
	}

	if pending > 0 {
		fmt.Println("\nRun 'preshub migrate up' to apply pending migrations")
	}
	return nil
}
