package quiz

import (
	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

// Verdict is the outcome of one submitted answer.
type Verdict struct {
	Correct    bool
	ScoreDelta int
	// RemovedFromWrongList is set when a correct replay answer cleared the
	// question's wrong-list entry.
	RemovedFromWrongList bool
	// AddedToWrongList is set when an incorrect answer created a new entry.
	AddedToWrongList bool
}

// Evaluator judges answers and applies the resulting mutations to the word
// store and wrong list. Persistence stays with the caller.
type Evaluator struct {
	store *wordbook.Store
	wrong *wordbook.WrongList
}

// NewEvaluator creates an evaluator over the given store and wrong list.
func NewEvaluator(store *wordbook.Store, wrong *wordbook.WrongList) *Evaluator {
	return &Evaluator{store: store, wrong: wrong}
}

// Submit evaluates a meaning-choice answer. An empty choice fails with
// ErrMissingSelection and mutates nothing.
func (e *Evaluator) Submit(q Question, choice string) (Verdict, error) {
	if choice == "" {
		return Verdict{}, ErrMissingSelection
	}
	return e.resolve(q, choice == q.Meaning), nil
}

// SubmitWords evaluates a word-choice answer. The submission is correct only
// when the chosen words equal the correct word set, regardless of order.
func (e *Evaluator) SubmitWords(q Question, chosen []string) (Verdict, error) {
	if len(chosen) == 0 {
		return Verdict{}, ErrMissingSelection
	}
	return e.resolve(q, sameWordSet(chosen, q.CorrectWords)), nil
}

// DontKnow resolves the question as a wrong answer. It never requires a
// selection.
func (e *Evaluator) DontKnow(q Question) Verdict {
	return e.resolve(q, false)
}

func (e *Evaluator) resolve(q Question, correct bool) Verdict {
	if correct {
		e.store.AdjustScores(q.CorrectWords, 1)
		verdict := Verdict{Correct: true, ScoreDelta: 1}
		if q.FromWrongList {
			verdict.RemovedFromWrongList = e.wrong.Remove(q.Meaning)
		}
		return verdict
	}

	e.store.AdjustScores(q.CorrectWords, -1)
	return Verdict{
		ScoreDelta:       -1,
		AddedToWrongList: e.wrong.Record(q.Meaning, q.CorrectWords),
	}
}

func sameWordSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, w := range a {
		set[w] = struct{}{}
	}
	if len(set) != len(b) {
		return false
	}
	for _, w := range b {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
