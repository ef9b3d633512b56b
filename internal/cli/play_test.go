package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"quiz-game/internal/app"
	"quiz-game/internal/bank"
	"quiz-game/internal/infra/memory"
)

func newShellService() *app.GameService {
	accounts := memory.NewAccountStore()
	scores := memory.NewScoreStore(accounts)
	return app.NewGameService(accounts, scores, app.QuestionSourceFunc(bank.QuestionsFor), bcrypt.MinCost)
}

func TestShellFullGameFlow(t *testing.T) {
	// Register, login, play Easy answering option 1 everywhere, view
	// the scoreboard, logout, quit.
	script := []string{
		"2", "bob", "pw1",
		"1", "bob", "pw1",
		"1",
		"1", "1", "1", "1", "1", "1", "1", "1",
		"4",
		"5",
		"3",
	}

	var out bytes.Buffer
	shell := newShell(newShellService(), strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	if err := shell.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Registration successful",
		"Welcome, bob!",
		"Question 1 of 8:",
		"You scored:",
		"USERNAME",
		"bob",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestShellReportsFailedLoginAndContinues(t *testing.T) {
	script := []string{
		"1", "nobody", "x",
		"3",
	}

	var out bytes.Buffer
	shell := newShell(newShellService(), strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	if err := shell.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.Contains(out.String(), "incorrect username or password") {
		t.Fatalf("expected login failure notification, got:\n%s", out.String())
	}
}

func TestShellRepromptsInvalidSelection(t *testing.T) {
	script := []string{
		"banana", "9",
		"3",
	}

	var out bytes.Buffer
	shell := newShell(newShellService(), strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	if err := shell.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if strings.Count(out.String(), "Please enter a number between 1 and 3.") != 2 {
		t.Fatalf("expected two re-prompts, got:\n%s", out.String())
	}
}
