package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
	verbose    bool
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}
	envDB := os.Getenv("QUIZ_DB")

	cmd := &cobra.Command{
		Use:   "quiz-game",
		Short: "Difficulty-gated multiple-choice quiz game with a local scoreboard",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&dbPath, "db", envDB, "SQLite database file (overrides config)")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log SQL queries")
	cmd.AddCommand(NewPlayCmd(&configPath, &dbPath, &verbose))
	cmd.AddCommand(NewScoresCmd(&configPath, &dbPath, &verbose))
	cmd.AddCommand(NewMigrateCmd(&configPath, &dbPath))
	return cmd
}
