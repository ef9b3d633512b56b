package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"quiz-game/internal/domain"
)

// AccountRepository abstracts how accounts are stored (in-memory, SQLite).
type AccountRepository interface {
	Insert(ctx context.Context, username, passwordHash string) (domain.Account, error)
	FindByUsername(ctx context.Context, username string) (domain.Account, error)
}

// ScoreRepository persists completed quiz results.
type ScoreRepository interface {
	Insert(ctx context.Context, accountID int64, difficulty domain.Difficulty, score int) (domain.ScoreRecord, error)
	List(ctx context.Context) ([]domain.ScoreRow, error)
}

// QuestionSource provides the question set for a difficulty.
type QuestionSource interface {
	QuestionsFor(difficulty domain.Difficulty) []domain.Question
}

// QuestionSourceFunc adapts a plain function to QuestionSource.
type QuestionSourceFunc func(domain.Difficulty) []domain.Question

func (f QuestionSourceFunc) QuestionsFor(d domain.Difficulty) []domain.Question { return f(d) }

// GameService contains the account, quiz, and leaderboard use cases.
type GameService struct {
	accounts   AccountRepository
	scores     ScoreRepository
	questions  QuestionSource
	bcryptCost int
}

func NewGameService(accounts AccountRepository, scores ScoreRepository, questions QuestionSource, bcryptCost int) *GameService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &GameService{
		accounts:   accounts,
		scores:     scores,
		questions:  questions,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account. The password is stored only as a
// bcrypt hash; the reference game kept plaintext, which we deliberately
// do not preserve.
func (s *GameService) Register(ctx context.Context, username, password string) (domain.Account, error) {
	if username == "" || password == "" {
		return domain.Account{}, domain.ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	return s.accounts.Insert(ctx, username, string(hash))
}

// Login authenticates a username/password pair. Unknown usernames and
// wrong passwords produce the same error so the login screen cannot be
// used to enumerate accounts.
func (s *GameService) Login(ctx context.Context, username, password string) (domain.Account, error) {
	if username == "" || password == "" {
		return domain.Account{}, domain.ErrEmptyCredentials
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return domain.Account{}, domain.ErrAuthFailed
	}
	if err != nil {
		return domain.Account{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return domain.Account{}, domain.ErrAuthFailed
	}

	return account, nil
}

// StartQuiz begins a new shuffled session for the chosen difficulty.
func (s *GameService) StartQuiz(difficulty domain.Difficulty) *Session {
	return NewSession(difficulty, s.questions.QuestionsFor(difficulty))
}

// FinishQuiz persists the final score of a completed session for
// account. A nil account means nobody is logged in: the session still
// completes but its score is discarded, never written.
func (s *GameService) FinishQuiz(ctx context.Context, account *domain.Account, session *Session) (domain.ScoreRecord, error) {
	score, err := session.FinalScore()
	if err != nil {
		return domain.ScoreRecord{}, err
	}

	if account == nil {
		return domain.ScoreRecord{}, nil
	}

	return s.scores.Insert(ctx, account.ID, session.Difficulty(), score)
}

// Leaderboard returns every recorded score joined with its owner's
// username, ordered by username ascending.
func (s *GameService) Leaderboard(ctx context.Context) ([]domain.ScoreRow, error) {
	return s.scores.List(ctx)
}
