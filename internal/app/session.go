package app

import (
	"math/rand"
	"time"

	"quiz-game/internal/domain"
)

// Session is one in-memory play-through of a difficulty's question set.
// It owns a shuffled copy of the questions, the cursor, and the score;
// whatever drives the play loop owns the session. Nothing here touches
// storage, so a session abandoned mid-quiz is simply dropped.
type Session struct {
	difficulty domain.Difficulty
	questions  []domain.Question
	index      int
	score      int
}

// NewSession starts a session with a freshly shuffled copy of questions.
func NewSession(difficulty domain.Difficulty, questions []domain.Question) *Session {
	return NewSessionWithRand(difficulty, questions, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSessionWithRand allows deterministic shuffling in tests.
func NewSessionWithRand(difficulty domain.Difficulty, questions []domain.Question, rnd *rand.Rand) *Session {
	shuffled := make([]domain.Question, len(questions))
	copy(shuffled, questions)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return &Session{
		difficulty: difficulty,
		questions:  shuffled,
	}
}

// Difficulty reports the tier this session was started on.
func (s *Session) Difficulty() domain.Difficulty { return s.difficulty }

// Length is the total number of questions in this session.
func (s *Session) Length() int { return len(s.questions) }

// Position is the 1-based number of the question Current would return.
func (s *Session) Position() int { return s.index + 1 }

// Completed reports whether every question has been answered.
func (s *Session) Completed() bool { return s.index == len(s.questions) }

// Current returns the question awaiting an answer.
func (s *Session) Current() (domain.Question, error) {
	if s.Completed() {
		return domain.Question{}, domain.ErrQuizCompleted
	}
	return s.questions[s.index], nil
}

// Submit scores choice against the current question and advances to the
// next one. Scoring and advancing are one transition, so a caller can
// neither answer the same question twice nor skip ahead. A choice that
// matches no option text counts as a wrong answer, matching how the
// game treats any non-answer selection.
func (s *Session) Submit(choice string) (bool, error) {
	if s.Completed() {
		return false, domain.ErrQuizCompleted
	}

	correct := choice == s.questions[s.index].Answer
	if correct {
		s.score++
	}
	s.index++
	return correct, nil
}

// FinalScore returns the tally once the session is complete.
func (s *Session) FinalScore() (int, error) {
	if !s.Completed() {
		return 0, domain.ErrQuizInProgress
	}
	return s.score, nil
}
