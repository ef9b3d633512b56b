package cli

import (
	"context"
	"log"

	"quiz-game/internal/app"
	"quiz-game/internal/bank"
	"quiz-game/internal/config"
	"quiz-game/internal/infra/memory"
	"quiz-game/internal/infra/sqlite"
)

// buildService wires stores and the game service from config and flags.
// The returned func closes whatever was opened.
func buildService(ctx context.Context, configPath, dbFlag string, verbose bool) (*app.GameService, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.Database.Path
	if dbFlag != "" {
		path = dbFlag
	}

	questions := app.QuestionSourceFunc(bank.QuestionsFor)

	if path == "" {
		log.Printf("no database configured; scores will not outlive this run")
		accounts := memory.NewAccountStore()
		scores := memory.NewScoreStore(accounts)
		return app.NewGameService(accounts, scores, questions, cfg.Auth.BcryptCost), func() {}, nil
	}

	db, err := sqlite.Open(path, verbose)
	if err != nil {
		return nil, nil, err
	}

	if err := sqlite.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	service := app.NewGameService(
		sqlite.NewAccountStore(db),
		sqlite.NewScoreStore(db),
		questions,
		cfg.Auth.BcryptCost,
	)
	return service, func() { db.Close() }, nil
}
