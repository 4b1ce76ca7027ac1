package cli

import (
	"context"
	"fmt"

	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

// AddWord adds a single word stamped with today's date and saves the record.
// Duplicates are reported, not treated as errors.
func (cli *InteractiveCLI) AddWord(ctx context.Context, english, chinese string) error {
	if english == "" || chinese == "" {
		return fmt.Errorf("both the English word and the Chinese meaning are required")
	}

	if !cli.store.Add(english, chinese, wordbook.CurrentDate()) {
		fmt.Fprintf(cli.stdoutWriter, "%s is already in the word list.\n", english)
		return nil
	}
	cli.persist(ctx)
	fmt.Fprintf(cli.stdoutWriter, "Added %s (%s).\n", english, chinese)
	return nil
}

// BulkAdd parses "english, chinese" lines and adds every valid pair, stamped
// with today's date. Malformed lines and duplicates are skipped.
func (cli *InteractiveCLI) BulkAdd(ctx context.Context, text string) {
	pairs := wordbook.ParseBulk(text)
	added := cli.store.AddBulk(pairs, wordbook.CurrentDate())
	if added > 0 {
		cli.persist(ctx)
	}
	fmt.Fprintf(cli.stdoutWriter, "Added %d of %d parsed pairs.\n", added, len(pairs))
}

// RemoveWord deletes a word from the list.
func (cli *InteractiveCLI) RemoveWord(ctx context.Context, english string) {
	if !cli.store.Remove(english) {
		fmt.Fprintf(cli.stdoutWriter, "%s is not in the word list.\n", english)
		return
	}
	cli.persist(ctx)
	fmt.Fprintf(cli.stdoutWriter, "Removed %s.\n", english)
}

// RemoveWrongEntry drops one meaning from the wrong list.
func (cli *InteractiveCLI) RemoveWrongEntry(ctx context.Context, meaning string) {
	if !cli.wrong.Remove(meaning) {
		fmt.Fprintf(cli.stdoutWriter, "\"%s\" is not in the wrong list.\n", meaning)
		return
	}
	cli.persist(ctx)
	fmt.Fprintf(cli.stdoutWriter, "Removed \"%s\" from the wrong list.\n", meaning)
}
