package memory

import (
	"context"
	"sync"

	"quiz-game/internal/domain"
)

// AccountStore is an in-memory implementation of app.AccountRepository.
// It backs tests and the no-database fallback mode of the CLI.
type AccountStore struct {
	mu       sync.RWMutex
	nextID   int64
	byName   map[string]domain.Account
	accounts map[int64]domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		nextID:   1,
		byName:   make(map[string]domain.Account),
		accounts: make(map[int64]domain.Account),
	}
}

func (s *AccountStore) Insert(_ context.Context, username, passwordHash string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[username]; ok {
		return domain.Account{}, domain.ErrUsernameTaken
	}

	account := domain.Account{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.nextID++
	s.byName[username] = account
	s.accounts[account.ID] = account
	return account, nil
}

func (s *AccountStore) FindByUsername(_ context.Context, username string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byName[username]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}

// Exists reports whether an account ID is known; the score store uses
// it to mimic the SQLite foreign-key check.
func (s *AccountStore) Exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[id]
	return ok
}

// Username resolves an account ID for the leaderboard join.
func (s *AccountStore) Username(id int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	return account.Username, ok
}
