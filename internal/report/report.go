// Package report renders a mastery report of the word list as markdown,
// optionally converted to PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

// levelOrder lists the mastery levels from weakest to strongest for the
// summary table.
var levelOrder = []wordbook.Level{
	wordbook.LevelVeryPoor,
	wordbook.LevelPoor,
	wordbook.LevelWeak,
	wordbook.LevelAverage,
	wordbook.LevelGood,
	wordbook.LevelMastered,
}

type Generator struct {
	store *wordbook.Store
}

func NewGenerator(store *wordbook.Store) *Generator {
	return &Generator{store: store}
}

// Markdown renders the full report. Words appear twice: once bucketed by
// mastery level and once grouped by the date they were added, newest first.
func (g *Generator) Markdown(username string, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Vocabulary mastery report\n\n")
	fmt.Fprintf(&sb, "- User: %s\n", username)
	fmt.Fprintf(&sb, "- Generated: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&sb, "- Words: %d\n\n", g.store.Len())

	g.writeLevelSummary(&sb)
	g.writeLevelSections(&sb)
	g.writeDateSections(&sb)

	return sb.String()
}

func (g *Generator) wordsByLevel() map[wordbook.Level][]wordbook.Word {
	words := g.store.Words()
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Score < words[j].Score
	})

	buckets := make(map[wordbook.Level][]wordbook.Word)
	for _, word := range words {
		level := wordbook.LevelFor(word.Score)
		buckets[level] = append(buckets[level], word)
	}
	return buckets
}

func (g *Generator) writeLevelSummary(sb *strings.Builder) {
	buckets := g.wordsByLevel()

	fmt.Fprintf(sb, "## Summary\n\n")
	fmt.Fprintf(sb, "| Level | Words |\n")
	fmt.Fprintf(sb, "| --- | --- |\n")
	for _, level := range levelOrder {
		fmt.Fprintf(sb, "| %s | %d |\n", level, len(buckets[level]))
	}
	fmt.Fprintf(sb, "\n")
}

func (g *Generator) writeLevelSections(sb *strings.Builder) {
	buckets := g.wordsByLevel()

	fmt.Fprintf(sb, "## By mastery level\n\n")
	for _, level := range levelOrder {
		words := buckets[level]
		if len(words) == 0 {
			continue
		}

		fmt.Fprintf(sb, "### %s\n\n", level)
		for _, word := range words {
			fmt.Fprintf(sb, "- %s (%s): %d\n", word.English, word.Chinese, word.Score)
		}
		fmt.Fprintf(sb, "\n")
	}
}

func (g *Generator) writeDateSections(sb *strings.Builder) {
	fmt.Fprintf(sb, "## By date added\n\n")
	for _, group := range g.store.GroupsByDate() {
		fmt.Fprintf(sb, "### %s\n\n", group.Date)
		for _, word := range group.Words {
			fmt.Fprintf(sb, "- %s (%s): %d\n", word.English, word.Chinese, word.Score)
		}
		fmt.Fprintf(sb, "\n")
	}
}

// Write renders the report into directory, creating it if needed, and returns
// the path of the markdown file. When asPDF is set the markdown is also
// converted and the PDF path is returned instead.
func (g *Generator) Write(directory, username string, now time.Time, asPDF bool) (string, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}

	content := []byte(g.Markdown(username, now))
	name := fmt.Sprintf("mastery-%s-%s", username, now.Format("2006-01-02"))

	markdownPath := filepath.Join(directory, name+".md")
	if err := os.WriteFile(markdownPath, content, 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	if !asPDF {
		return markdownPath, nil
	}

	pdfPath := filepath.Join(directory, name+".pdf")
	if err := writePDF(content, pdfPath); err != nil {
		return "", fmt.Errorf("writePDF(%s) > %w", pdfPath, err)
	}
	return pdfPath, nil
}
