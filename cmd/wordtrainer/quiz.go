package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yqhu-dev/wordtrainer/internal/cli"
	"github.com/yqhu-dev/wordtrainer/internal/quiz"
)

type ModeFlag string

// Set implements pflag.Value.
func (m *ModeFlag) Set(v string) error {
	switch v {
	case string(ModeMeaning):
		*m = ModeMeaning
	case string(ModeWord):
		*m = ModeWord
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, ModeMeaning, ModeWord)
	}
	return nil
}

// String implements pflag.Value.
func (m *ModeFlag) String() string {
	if m == nil {
		return ""
	}
	return string(*m)
}

// Type implements pflag.Value.
func (m *ModeFlag) Type() string {
	return "ModeFlag"
}

var (
	_ pflag.Value = (*ModeFlag)(nil)
)

const (
	ModeMeaning ModeFlag = "meaning"
	ModeWord    ModeFlag = "word"
)

func (m ModeFlag) quizMode() quiz.Mode {
	if m == ModeWord {
		return quiz.ModeWordChoice
	}
	return quiz.ModeMeaningChoice
}

func newQuizCommand() *cobra.Command {
	var (
		mode = ModeMeaning
		date string
	)
	command := &cobra.Command{
		Use:   "quiz",
		Short: "Multiple-choice quiz over your weakest meanings",
		Long: `Quiz the meaning groups with negative scores, weakest first.
With --date, quiz the words added on that date instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			base, cfg, cleanup, err := newInteractiveCLI(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			selection := quiz.NegativeSelection()
			if date != "" {
				selection = quiz.DateSelection(date)
			}

			quizCLI, err := cli.NewQuizCLI(base, quiz.NewSampler(nil), selection, mode.quizMode(), cfg.Quiz.ChoiceCount)
			if err != nil {
				if errors.Is(err, quiz.ErrEmptySelection) {
					fmt.Printf("No words match %s.\n", selection)
					if dates := base.Store().Dates(); len(dates) > 0 {
						fmt.Printf("Available dates: %s\n", strings.Join(dates, ", "))
					}
					return nil
				}
				return err
			}

			fmt.Printf("Starting a quiz with %d questions\n\n", quizCLI.Total())
			return quizCLI.Run(ctx, quizCLI)
		},
	}
	command.Flags().Var(&mode, "mode", "question variant: meaning (pick the meaning) or word (pick every matching word)")
	command.Flags().StringVar(&date, "date", "", "quiz the words added on this date (YYYY-MM-DD) instead of negative-score words")

	return command
}
