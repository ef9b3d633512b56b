package domain

// Difficulty selects one of the three fixed question sets.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the supported tiers in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question models an MCQ question with exactly one correct option.
// Answer always equals one of the entries in Options.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// Account is a registered identity used to attribute persisted scores.
// PasswordHash holds a bcrypt hash; the plaintext is never stored.
type Account struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// ScoreRecord is one completed play-through, immutable once written.
type ScoreRecord struct {
	ID         int64      `json:"id"`
	AccountID  int64      `json:"accountId"`
	Difficulty Difficulty `json:"difficulty"`
	Score      int        `json:"score"`
}

// ScoreRow is a leaderboard line: a score joined with its owner's username.
type ScoreRow struct {
	Username   string     `json:"username"`
	Difficulty Difficulty `json:"difficulty"`
	Score      int        `json:"score"`
}
