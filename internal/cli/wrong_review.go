package cli

import (
	"context"
	"fmt"

	"github.com/yqhu-dev/wordtrainer/internal/quiz"
)

// WrongReviewCLI replays the wrong list in stored order, one meaning-choice
// question per entry.
type WrongReviewCLI struct {
	*InteractiveCLI
	replay    *quiz.ReplaySession
	evaluator *quiz.Evaluator
}

// NewWrongReviewCLI starts a review over the current wrong list.
func NewWrongReviewCLI(base *InteractiveCLI, sampler *quiz.Sampler, choiceCount int) *WrongReviewCLI {
	return &WrongReviewCLI{
		InteractiveCLI: base,
		replay:         quiz.NewReplaySession(base.store, base.wrong, sampler, choiceCount),
		evaluator:      quiz.NewEvaluator(base.store, base.wrong),
	}
}

// Total returns the current number of wrong-list entries.
func (r *WrongReviewCLI) Total() int {
	return r.replay.Total()
}

func (r *WrongReviewCLI) Session(ctx context.Context) error {
	question, ok := r.replay.Next()
	if !ok {
		fmt.Fprintln(r.stdoutWriter, "No more wrong answers to review!")
		return errEnd
	}

	r.printQuestion(question)

	for {
		input, err := r.readLine("Answer (number, ? for don't know, d to drop the entry, q to quit): ")
		if err != nil {
			return err
		}

		switch input {
		case "q", "quit", "exit":
			return errEnd
		case "d":
			if r.replay.DeleteCurrent() {
				fmt.Fprintf(r.stdoutWriter, "Dropped \"%s\" from the wrong list.\n", question.Meaning)
				r.persist(ctx)
			}
			return nil
		case "", "?":
			verdict := r.evaluator.DontKnow(question)
			r.printVerdict(question, verdict)
			r.persist(ctx)
			return nil
		}

		choices, err := parseChoiceInput(input, len(question.Choices))
		if err != nil || len(choices) != 1 {
			fmt.Fprintln(r.stdoutWriter, "Please answer with one of the listed numbers.")
			continue
		}

		verdict, err := r.evaluator.Submit(question, question.Choices[choices[0]])
		if err != nil {
			return fmt.Errorf("evaluator.Submit() > %w", err)
		}
		if verdict.RemovedFromWrongList {
			// The removal shifted the remaining entries into the served slot.
			r.replay.EntryRemoved()
		}

		r.printVerdict(question, verdict)
		r.persist(ctx)
		return nil
	}
}
