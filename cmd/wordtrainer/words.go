package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newWordsCommand() *cobra.Command {
	wordsCommand := &cobra.Command{
		Use:   "words",
		Short: "Manage the word list",
	}

	wordsCommand.AddCommand(
		newWordsAddCommand(),
		newWordsBulkAddCommand(),
		newWordsRemoveCommand(),
	)

	return wordsCommand
}

func newWordsAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <english> <chinese>",
		Short: "Add one word with its Chinese meaning",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			base, _, cleanup, err := newInteractiveCLI(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return base.AddWord(ctx, args[0], args[1])
		},
	}
}

func newWordsBulkAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-add [file]",
		Short: "Add many words from \"english, chinese\" lines in a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text []byte
			var err error
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
				}
			} else {
				text, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			ctx := cmd.Context()
			base, _, cleanup, err := newInteractiveCLI(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			base.BulkAdd(ctx, string(text))
			return nil
		},
	}
}

func newWordsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <english>",
		Short: "Remove one word from the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			base, _, cleanup, err := newInteractiveCLI(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			base.RemoveWord(ctx, args[0])
			return nil
		},
	}
}

func newFlashcardsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flashcards",
		Short: "Browse all words as flashcards, newest dates first",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _, cleanup, err := newInteractiveCLI(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			base.ShowFlashcards()
			return nil
		},
	}
}
