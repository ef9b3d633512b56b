package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"quiz-game/internal/app"
	"quiz-game/internal/domain"
)

// NewPlayCmd builds the CLI subcommand that runs the interactive game.
func NewPlayCmd(configPath, dbPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the quiz game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, *dbPath, *verbose)
		},
	}
}

func runPlay(ctx context.Context, configPath, dbPath string, verbose bool) error {
	service, closeFn, err := buildService(ctx, configPath, dbPath, verbose)
	if err != nil {
		return err
	}
	defer closeFn()

	shell := newShell(service, os.Stdin, os.Stdout)
	return shell.run(ctx)
}

// shell drives the whole game from a terminal: login screen, difficulty
// menu, question loop, score screen. It owns the authenticated account
// and the active session; the engine underneath holds no global state.
type shell struct {
	service *app.GameService
	in      *bufio.Scanner
	out     io.Writer
}

func newShell(service *app.GameService, in io.Reader, out io.Writer) *shell {
	return &shell{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// run shows the login screen until the player quits. Every error from
// the engine is printed and the player returns to the prior prompt;
// nothing aborts the loop except EOF on input.
func (sh *shell) run(ctx context.Context) error {
	for {
		choice, err := sh.readChoice("\n1) Login  2) Register  3) Quit", 3)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			account, err := sh.login(ctx)
			if err != nil {
				if err == io.EOF {
					return nil
				}
				sh.notify(err)
				continue
			}
			if err := sh.menu(ctx, account); err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		case 2:
			if err := sh.register(ctx); err != nil {
				if err == io.EOF {
					return nil
				}
				sh.notify(err)
			}
		case 3:
			return nil
		}
	}
}

func (sh *shell) login(ctx context.Context) (domain.Account, error) {
	username, err := sh.readLine("Username: ")
	if err != nil {
		return domain.Account{}, err
	}
	password, err := sh.readLine("Password: ")
	if err != nil {
		return domain.Account{}, err
	}
	return sh.service.Login(ctx, username, password)
}

func (sh *shell) register(ctx context.Context) error {
	username, err := sh.readLine("Username: ")
	if err != nil {
		return err
	}
	password, err := sh.readLine("Password: ")
	if err != nil {
		return err
	}
	if _, err := sh.service.Register(ctx, username, password); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Registration successful. Please login.")
	return nil
}

// menu is the difficulty screen shown after login. Returning nil goes
// back to the login screen (logout); io.EOF quits entirely.
func (sh *shell) menu(ctx context.Context, account domain.Account) error {
	fmt.Fprintf(sh.out, "\nWelcome, %s!\n", account.Username)

	for {
		choice, err := sh.readChoice("\nSelect difficulty: 1) Easy  2) Medium  3) Hard  4) Show scores  5) Logout", 5)
		if err != nil {
			return err
		}

		switch choice {
		case 1, 2, 3:
			if err := sh.playQuiz(ctx, account, domain.Difficulties[choice-1]); err != nil {
				if err == io.EOF {
					return err
				}
				sh.notify(err)
			}
		case 4:
			rows, err := sh.service.Leaderboard(ctx)
			if err != nil {
				sh.notify(err)
				continue
			}
			formatScoreTable(sh.out, rows)
		case 5:
			return nil
		}
	}
}

func (sh *shell) playQuiz(ctx context.Context, account domain.Account, difficulty domain.Difficulty) error {
	session := sh.service.StartQuiz(difficulty)

	for !session.Completed() {
		question, err := session.Current()
		if err != nil {
			return err
		}

		fmt.Fprintf(sh.out, "\nQuestion %d of %d: %s\n", session.Position(), session.Length(), question.Prompt)
		for i, opt := range question.Options {
			fmt.Fprintf(sh.out, "  %d) %s\n", i+1, opt)
		}

		// The quiz never advances without a selection, mirroring the
		// disabled Next button of the original screen.
		choice, err := sh.readChoice("Your answer", len(question.Options))
		if err != nil {
			return err
		}
		if _, err := session.Submit(question.Options[choice-1]); err != nil {
			return err
		}
	}

	score, err := session.FinalScore()
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "\nYou scored: %d of %d\n", score, session.Length())

	if _, err := sh.service.FinishQuiz(ctx, &account, session); err != nil {
		return err
	}
	return nil
}

func (sh *shell) notify(err error) {
	fmt.Fprintf(sh.out, "! %v\n", err)
}

func (sh *shell) readLine(prompt string) (string, error) {
	fmt.Fprint(sh.out, prompt)
	if !sh.in.Scan() {
		if err := sh.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(sh.in.Text()), nil
}

// readChoice re-prompts until the player enters a number in [1, max].
func (sh *shell) readChoice(prompt string, max int) (int, error) {
	for {
		line, err := sh.readLine(prompt + ": ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= max {
			return n, nil
		}
		fmt.Fprintf(sh.out, "Please enter a number between 1 and %d.\n", max)
	}
}
