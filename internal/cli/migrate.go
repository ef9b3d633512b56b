package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"quiz-game/internal/config"
	"quiz-game/internal/infra/sqlite"
)

// NewMigrateCmd applies database migrations.
func NewMigrateCmd(configPath, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the score database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath, *dbPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath, dbFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	path := cfg.Database.Path
	if dbFlag != "" {
		path = dbFlag
	}
	if path == "" {
		return fmt.Errorf("no database path configured")
	}

	db, err := sqlite.Open(path, false)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db); err != nil {
		return err
	}
	log.Printf("migrations applied to %s", path)
	return nil
}
