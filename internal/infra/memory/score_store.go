package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"quiz-game/internal/domain"
)

// ScoreStore is an in-memory implementation of app.ScoreRepository.
// It joins against an AccountStore the way the SQLite store joins
// scores against the users table.
type ScoreStore struct {
	accounts *AccountStore

	mu      sync.RWMutex
	nextID  int64
	records []domain.ScoreRecord
}

func NewScoreStore(accounts *AccountStore) *ScoreStore {
	return &ScoreStore{
		accounts: accounts,
		nextID:   1,
	}
}

func (s *ScoreStore) Insert(_ context.Context, accountID int64, difficulty domain.Difficulty, score int) (domain.ScoreRecord, error) {
	if !s.accounts.Exists(accountID) {
		return domain.ScoreRecord{}, fmt.Errorf("unknown account %d: %w", accountID, domain.ErrStoreUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := domain.ScoreRecord{
		ID:         s.nextID,
		AccountID:  accountID,
		Difficulty: difficulty,
		Score:      score,
	}
	s.nextID++
	s.records = append(s.records, record)
	return record, nil
}

func (s *ScoreStore) List(_ context.Context) ([]domain.ScoreRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]domain.ScoreRow, 0, len(s.records))
	for _, record := range s.records {
		username, ok := s.accounts.Username(record.AccountID)
		if !ok {
			continue
		}
		rows = append(rows, domain.ScoreRow{
			Username:   username,
			Difficulty: record.Difficulty,
			Score:      record.Score,
		})
	}

	// Username ascending; the stable sort keeps insertion order for ties.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Username < rows[j].Username
	})
	return rows, nil
}
