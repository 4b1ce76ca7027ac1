// Package cli implements the interactive trainer sessions: multiple-choice
// quizzes, wrong-list reviews, flashcard browsing and word management.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/yqhu-dev/wordtrainer/internal/quiz"
	"github.com/yqhu-dev/wordtrainer/internal/userdata"
	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

var errEnd = errors.New("end")

// InteractiveCLI contains shared state for interactive trainer sessions.
type InteractiveCLI struct {
	username     string
	recordID     string
	store        *wordbook.Store
	wrong        *wordbook.WrongList
	repository   userdata.Repository
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewInteractiveCLI fetches the user's record and prepares the shared state
// every session works on.
func NewInteractiveCLI(ctx context.Context, username string, repository userdata.Repository) (*InteractiveCLI, error) {
	record, err := repository.FetchByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("repository.FetchByUsername(%s) > %w", username, err)
	}

	return &InteractiveCLI{
		username:     username,
		recordID:     record.ID,
		store:        wordbook.NewStore(record.Words),
		wrong:        wordbook.NewWrongList(record.Wrong),
		repository:   repository,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}, nil
}

// Username returns the name the record was fetched for.
func (cli *InteractiveCLI) Username() string {
	return cli.username
}

// Store exposes the in-memory word list, e.g. for reports.
func (cli *InteractiveCLI) Store() *wordbook.Store {
	return cli.store
}

type Session interface {
	Session(context context.Context) error
}

func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// persist rewrites the remote record. A failed save keeps the session going:
// the in-memory state stays authoritative until the next save succeeds.
func (cli *InteractiveCLI) persist(ctx context.Context) {
	if err := cli.repository.Save(ctx, cli.recordID, cli.store.Words(), cli.wrong.Entries()); err != nil {
		slog.Warn("failed to save the user record",
			"recordID", cli.recordID,
			"error", err,
		)
	}
}

func (cli *InteractiveCLI) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(cli.stdoutWriter, prompt); err != nil {
		return "", fmt.Errorf("failed to write to stdout: %w", err)
	}
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (cli *InteractiveCLI) printQuestion(q quiz.Question) {
	fmt.Fprintf(cli.stdoutWriter, "Question %d/%d\n", q.Number, q.Total)
	switch q.Mode {
	case quiz.ModeWordChoice:
		_, _ = cli.bold.Fprintf(cli.stdoutWriter, "Select every word meaning \"%s\" (%d answers)\n", q.Meaning, len(q.CorrectWords))
	default:
		_, _ = cli.bold.Fprintf(cli.stdoutWriter, "What is the meaning of %s?\n", q.Prompt)
	}
	for i, choice := range q.Choices {
		fmt.Fprintf(cli.stdoutWriter, "  %d. %s\n", i+1, choice)
	}
}

func (cli *InteractiveCLI) printVerdict(q quiz.Question, verdict quiz.Verdict) {
	if verdict.Correct {
		fmt.Fprint(cli.stdoutWriter, "✅ ")
		_, _ = color.New(color.FgGreen).Fprintf(cli.stdoutWriter, `It's correct. The meaning of %s is "%s"`,
			cli.bold.Sprintf("%s", q.Prompt),
			cli.italic.Sprintf("%s", q.Meaning),
		)
	} else {
		fmt.Fprint(cli.stdoutWriter, "❌ ")
		_, _ = color.New(color.FgRed).Fprintf(cli.stdoutWriter, `It's wrong. The meaning of %s is "%s"`,
			cli.bold.Sprintf("%s", q.Prompt),
			cli.italic.Sprintf("%s", q.Meaning),
		)
	}
	fmt.Fprintln(cli.stdoutWriter)

	for _, english := range q.CorrectWords {
		score := cli.store.Score(english)
		_, _ = levelColor(score).Fprintf(cli.stdoutWriter, "   %s: %d (%s)\n", english, score, wordbook.LevelFor(score))
	}
	if verdict.AddedToWrongList {
		fmt.Fprintln(cli.stdoutWriter, "   Added to the wrong list for later review.")
	}
	if verdict.RemovedFromWrongList {
		fmt.Fprintln(cli.stdoutWriter, "   Removed from the wrong list.")
	}
}

// levelColor maps a score to the flashcard color of its mastery band.
func levelColor(score int) *color.Color {
	switch wordbook.LevelFor(score) {
	case wordbook.LevelVeryPoor:
		return color.New(color.FgRed)
	case wordbook.LevelPoor:
		return color.New(color.FgMagenta)
	case wordbook.LevelWeak:
		return color.New(color.FgYellow)
	case wordbook.LevelAverage:
		return color.New(color.FgWhite)
	case wordbook.LevelGood:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgGreen)
	}
}
