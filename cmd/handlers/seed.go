package handlers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"preshub/internal/persistence"
)

// NewSeedCmd creates the seed command for loading starter question seeds
func NewSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load starter discovery question seeds",
		Long: `Load the curated starter set of discovery question seeds into the
database. Seeding is idempotent: if any seeds already exist the command is a
no-op, so it is safe to run on every deploy.

Example:
  preshub seed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context())
		},
	}
}

func runSeed(ctx context.Context) error {
	db, err := getDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := persistence.SeedQuestions(ctx, db); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Println("Question seeds loaded")
	return nil
}
