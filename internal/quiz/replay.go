package quiz

import (
	"log/slog"

	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

// ReplaySession walks the wrong list in stored order, serving one
// meaning-choice question per entry. Unlike the main quiz there is no
// score-based reordering.
type ReplaySession struct {
	store       *wordbook.Store
	wrong       *wordbook.WrongList
	sampler     *Sampler
	choiceCount int
	cursor      int
	served      bool
}

// NewReplaySession creates a replay over the current wrong list.
func NewReplaySession(store *wordbook.Store, wrong *wordbook.WrongList, sampler *Sampler, choiceCount int) *ReplaySession {
	if choiceCount < 2 {
		choiceCount = DefaultChoiceCount
	}
	return &ReplaySession{store: store, wrong: wrong, sampler: sampler, choiceCount: choiceCount}
}

// HasNext reports whether another entry remains to replay.
func (r *ReplaySession) HasNext() bool {
	return r.cursor < r.wrong.Len()
}

// Total returns the current number of wrong-list entries.
func (r *ReplaySession) Total() int {
	return r.wrong.Len()
}

// Next serves a question for the next wrong-list entry. The prompt reuses the
// entry's stored correct words, capped at two. Entries with no correct words
// cannot be served as questions; records written by other clients may carry
// them, so they are skipped rather than treated as corruption.
func (r *ReplaySession) Next() (Question, bool) {
	var entry wordbook.WrongEntry
	for {
		var ok bool
		entry, ok = r.wrong.EntryAt(r.cursor)
		if !ok {
			r.served = false
			return Question{}, false
		}
		r.cursor++
		if len(entry.Correct) > 0 {
			break
		}
		slog.Default().Warn("skipping wrong-list entry without correct words",
			slog.String("meaning", entry.Meaning))
	}
	r.served = true

	correct := entry.Correct
	if len(correct) > 2 {
		correct = correct[:2]
	}
	q := Question{
		Mode:          ModeMeaningChoice,
		Prompt:        correct[0],
		Meaning:       entry.Meaning,
		CorrectWords:  correct,
		Number:        r.cursor,
		Total:         r.wrong.Len(),
		FromWrongList: true,
	}
	correctGroup := wordbook.MeaningGroup{Meaning: entry.Meaning, Words: entry.Correct}
	q.Choices = append([]string{entry.Meaning},
		r.sampler.Meanings(r.store.GroupsByMeaning(), correctGroup, r.choiceCount-1)...)
	r.sampler.Shuffle(q.Choices)
	return q, true
}

// EntryRemoved steps the cursor back after the served entry was removed from
// the list (a correct retry), so the next call lands on the entry that slid
// into its position.
func (r *ReplaySession) EntryRemoved() {
	if r.cursor > 0 {
		r.cursor--
	}
	r.served = false
}

// DeleteCurrent removes the served entry from the wrong list and keeps the
// cursor consistent. It reports whether an entry was removed.
func (r *ReplaySession) DeleteCurrent() bool {
	if !r.served || r.cursor == 0 {
		return false
	}
	if !r.wrong.RemoveAt(r.cursor - 1) {
		return false
	}
	r.cursor--
	r.served = false
	return true
}
