package sqlite

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"quiz-game/internal/domain"
)

// ScoreStore is the SQLite-backed app.ScoreRepository.
type ScoreStore struct {
	db *bun.DB
}

func NewScoreStore(db *bun.DB) *ScoreStore {
	return &ScoreStore{db: db}
}

func (s *ScoreStore) Insert(ctx context.Context, accountID int64, difficulty domain.Difficulty, score int) (domain.ScoreRecord, error) {
	row := &scoreRow{
		UserID: accountID,
		Level:  string(difficulty),
		Score:  score,
	}

	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		// Covers both an unreachable database and the foreign-key
		// rejection of a score for an account that does not exist.
		return domain.ScoreRecord{}, fmt.Errorf("insert score: %w: %w", domain.ErrStoreUnavailable, err)
	}

	return domain.ScoreRecord{
		ID:         row.ID,
		AccountID:  accountID,
		Difficulty: difficulty,
		Score:      score,
	}, nil
}

type leaderboardRow struct {
	Username string `bun:"username"`
	Level    string `bun:"level"`
	Score    int    `bun:"score"`
}

func (s *ScoreStore) List(ctx context.Context) ([]domain.ScoreRow, error) {
	var rows []leaderboardRow
	err := s.db.NewSelect().
		ColumnExpr("u.username AS username").
		ColumnExpr("s.level AS level").
		ColumnExpr("s.score AS score").
		TableExpr("scores AS s").
		Join("JOIN users AS u ON u.id = s.user_id").
		OrderExpr("u.username ASC, s.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w: %w", domain.ErrStoreUnavailable, err)
	}

	out := make([]domain.ScoreRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ScoreRow{
			Username:   row.Username,
			Difficulty: domain.Difficulty(row.Level),
			Score:      row.Score,
		})
	}
	return out, nil
}
