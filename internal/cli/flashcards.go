package cli

import (
	"fmt"

	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

// ShowFlashcards prints the word list grouped by the date each word was
// added, newest dates first and weakest words first within a date. Colors
// follow the mastery bands.
func (cli *InteractiveCLI) ShowFlashcards() {
	if cli.store.Len() == 0 {
		fmt.Fprintln(cli.stdoutWriter, "No words yet. Add some first!")
		return
	}

	for _, group := range cli.store.GroupsByDate() {
		_, _ = cli.bold.Fprintln(cli.stdoutWriter, group.Date)
		for _, word := range group.Words {
			_, _ = levelColor(word.Score).Fprintf(cli.stdoutWriter, "  %s (%s): %d, %s\n",
				word.English, word.Chinese, word.Score, wordbook.LevelFor(word.Score))
		}
		fmt.Fprintln(cli.stdoutWriter)
	}
}

// ShowWrongList prints the remediation queue in stored order.
func (cli *InteractiveCLI) ShowWrongList() {
	if cli.wrong.IsEmpty() {
		fmt.Fprintln(cli.stdoutWriter, "The wrong list is empty. Well done!")
		return
	}

	for i, entry := range cli.wrong.Entries() {
		fmt.Fprintf(cli.stdoutWriter, "%d. %s: ", i+1, entry.Meaning)
		for j, english := range entry.Correct {
			if j > 0 {
				fmt.Fprint(cli.stdoutWriter, ", ")
			}
			_, _ = levelColor(cli.store.Score(english)).Fprint(cli.stdoutWriter, english)
		}
		fmt.Fprintln(cli.stdoutWriter)
	}
}
