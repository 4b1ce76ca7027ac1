package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yqhu-dev/wordtrainer/internal/quiz"
)

// QuizCLI runs one multiple-choice training pass over the selected meaning
// groups, weakest groups first.
type QuizCLI struct {
	*InteractiveCLI
	session   *quiz.Session
	evaluator *quiz.Evaluator
}

// NewQuizCLI starts a quiz over the meaning groups matching the selection.
func NewQuizCLI(base *InteractiveCLI, sampler *quiz.Sampler, sel quiz.Selection, mode quiz.Mode, choiceCount int) (*QuizCLI, error) {
	generator := quiz.NewGenerator(base.store, sampler, choiceCount)
	session, err := generator.Start(sel, mode)
	if err != nil {
		return nil, fmt.Errorf("generator.Start(%s) > %w", sel, err)
	}

	return &QuizCLI{
		InteractiveCLI: base,
		session:        session,
		evaluator:      quiz.NewEvaluator(base.store, base.wrong),
	}, nil
}

// Total returns the number of questions in the session.
func (r *QuizCLI) Total() int {
	return r.session.Total()
}

func (r *QuizCLI) Session(ctx context.Context) error {
	question, ok := r.session.Next()
	if !ok {
		fmt.Fprintln(r.stdoutWriter, "No more questions!")
		return errEnd
	}

	r.printQuestion(question)

	for {
		input, err := r.readLine("Answer (number, ? for don't know, d to delete the word, q to quit): ")
		if err != nil {
			return err
		}

		switch input {
		case "q", "quit", "exit":
			return errEnd
		case "d":
			if r.session.DeleteCurrentWord() {
				fmt.Fprintf(r.stdoutWriter, "Deleted %s from the word list.\n", question.Prompt)
				r.persist(ctx)
			}
			return nil
		case "", "?":
			verdict := r.evaluator.DontKnow(question)
			r.printVerdict(question, verdict)
			r.persist(ctx)
			return nil
		}

		verdict, err := r.submit(question, input)
		if err != nil {
			fmt.Fprintln(r.stdoutWriter, "Please answer with the listed numbers, e.g. 2 or 1,3.")
			continue
		}

		r.printVerdict(question, verdict)
		r.persist(ctx)
		return nil
	}
}

func (r *QuizCLI) submit(question quiz.Question, input string) (quiz.Verdict, error) {
	choices, err := parseChoiceInput(input, len(question.Choices))
	if err != nil {
		return quiz.Verdict{}, err
	}

	if question.Mode == quiz.ModeWordChoice {
		chosen := make([]string, 0, len(choices))
		for _, i := range choices {
			chosen = append(chosen, question.Choices[i])
		}
		return r.evaluator.SubmitWords(question, chosen)
	}

	if len(choices) != 1 {
		return quiz.Verdict{}, fmt.Errorf("exactly one choice is expected")
	}
	return r.evaluator.Submit(question, question.Choices[choices[0]])
}

// parseChoiceInput parses "2" or "1,3" into zero-based choice indexes.
func parseChoiceInput(input string, choiceCount int) ([]int, error) {
	var indexes []int
	for _, part := range strings.Split(input, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", part)
		}
		if n < 1 || n > choiceCount {
			return nil, fmt.Errorf("choice %d is out of range", n)
		}
		indexes = append(indexes, n-1)
	}
	return indexes, nil
}
