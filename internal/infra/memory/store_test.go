package memory

import (
	"context"
	"errors"
	"testing"

	"quiz-game/internal/domain"
)

func TestAccountStoreDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore()

	if _, err := store.Insert(ctx, "alice", "hash1"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := store.Insert(ctx, "alice", "hash2"); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// Case-sensitive usernames: Alice and alice are distinct.
	if _, err := store.Insert(ctx, "Alice", "hash3"); err != nil {
		t.Fatalf("case-sensitive insert: %v", err)
	}
}

func TestAccountStoreFindMiss(t *testing.T) {
	store := NewAccountStore()
	if _, err := store.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestScoreStoreRejectsUnknownAccount(t *testing.T) {
	accounts := NewAccountStore()
	scores := NewScoreStore(accounts)

	_, err := scores.Insert(context.Background(), 42, domain.DifficultyEasy, 3)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestScoreStoreListOrder(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccountStore()
	scores := NewScoreStore(accounts)

	bob, _ := accounts.Insert(ctx, "bob", "h")
	alice, _ := accounts.Insert(ctx, "alice", "h")

	// bob scores first, then alice twice; the listing is ordered by
	// username with insertion order breaking the tie.
	if _, err := scores.Insert(ctx, bob.ID, domain.DifficultyHard, 6); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := scores.Insert(ctx, alice.ID, domain.DifficultyEasy, 7); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := scores.Insert(ctx, alice.ID, domain.DifficultyMedium, 4); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := scores.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []domain.ScoreRow{
		{Username: "alice", Difficulty: domain.DifficultyEasy, Score: 7},
		{Username: "alice", Difficulty: domain.DifficultyMedium, Score: 4},
		{Username: "bob", Difficulty: domain.DifficultyHard, Score: 6},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}
}
