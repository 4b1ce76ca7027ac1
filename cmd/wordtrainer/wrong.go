package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yqhu-dev/wordtrainer/internal/cli"
	"github.com/yqhu-dev/wordtrainer/internal/quiz"
)

func newWrongCommand() *cobra.Command {
	wrongCommand := &cobra.Command{
		Use:   "wrong",
		Short: "Review and manage previously missed meanings",
	}

	wrongCommand.AddCommand(
		newWrongReviewCommand(),
		newWrongListCommand(),
		newWrongRemoveCommand(),
	)

	return wrongCommand
}

func newWrongReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Replay every missed meaning in the order it was recorded",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			base, cfg, cleanup, err := newInteractiveCLI(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			review := cli.NewWrongReviewCLI(base, quiz.NewSampler(nil), cfg.Quiz.ChoiceCount)
			if review.Total() == 0 {
				fmt.Println("The wrong list is empty. Well done!")
				return nil
			}

			fmt.Printf("Reviewing %d missed meanings\n\n", review.Total())
			return review.Run(ctx, review)
		},
	}
}

func newWrongListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the wrong list",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _, cleanup, err := newInteractiveCLI(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			base.ShowWrongList()
			return nil
		},
	}
}

func newWrongRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <meaning>",
		Short: "Drop one meaning from the wrong list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			base, _, cleanup, err := newInteractiveCLI(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			base.RemoveWrongEntry(ctx, args[0])
			return nil
		},
	}
}
