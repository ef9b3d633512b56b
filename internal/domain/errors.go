package domain

import "errors"

var (
	// ErrEmptyCredentials is returned when username or password is blank.
	ErrEmptyCredentials = errors.New("username and password must not be empty")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrAuthFailed covers both unknown username and wrong password,
	// so login failures never reveal which usernames exist.
	ErrAuthFailed = errors.New("incorrect username or password")
	// ErrAccountNotFound is an infra-level miss; the game service
	// collapses it into ErrAuthFailed before it reaches a user.
	ErrAccountNotFound = errors.New("account not found")
	// ErrQuizCompleted is returned when asking a finished session for
	// a question or submitting another answer to it.
	ErrQuizCompleted = errors.New("quiz already completed")
	// ErrQuizInProgress is returned when reading the final score of a
	// session that still has questions left.
	ErrQuizInProgress = errors.New("quiz still in progress")
	// ErrStoreUnavailable indicates the backing store rejected an
	// operation (unreachable database or constraint violation).
	ErrStoreUnavailable = errors.New("storage unavailable")
)
