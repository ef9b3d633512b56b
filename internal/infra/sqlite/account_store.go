package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"quiz-game/internal/domain"
)

// AccountStore is the SQLite-backed app.AccountRepository.
type AccountStore struct {
	db *bun.DB
}

func NewAccountStore(db *bun.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) Insert(ctx context.Context, username, passwordHash string) (domain.Account, error) {
	row := &userRow{
		Username: username,
		Password: passwordHash,
	}

	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		// SQLite reports duplicate usernames through the unique index
		// on users.username; everything else is a storage failure.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.Account{}, domain.ErrUsernameTaken
		}
		return domain.Account{}, fmt.Errorf("insert account: %w: %w", domain.ErrStoreUnavailable, err)
	}

	return domain.Account{
		ID:           row.ID,
		Username:     username,
		PasswordHash: passwordHash,
	}, nil
}

func (s *AccountStore) FindByUsername(ctx context.Context, username string) (domain.Account, error) {
	row := new(userRow)
	err := s.db.NewSelect().Model(row).Where("username = ?", username).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("find account: %w: %w", domain.ErrStoreUnavailable, err)
	}

	return domain.Account{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.Password,
	}, nil
}
