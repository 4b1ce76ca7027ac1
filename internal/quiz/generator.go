package quiz

import (
	"errors"
	"sort"

	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

var (
	// ErrEmptySelection is returned when no meaning group matches the chosen
	// quiz scope. Recoverable: the user picks another scope.
	ErrEmptySelection = errors.New("no words match the selected quiz scope")

	// ErrMissingSelection is returned when an answer is submitted without a
	// choice. Recoverable: nothing is mutated.
	ErrMissingSelection = errors.New("an answer choice must be selected")
)

// DefaultChoiceCount is the number of options rendered per question.
const DefaultChoiceCount = 4

// Selection chooses which meaning groups a quiz covers: either every group
// containing a word with a negative score, or the groups touching one date.
type Selection struct {
	negative bool
	date     string
}

// NegativeSelection covers all meaning groups containing at least one word
// whose score is below zero.
func NegativeSelection() Selection {
	return Selection{negative: true}
}

// DateSelection covers the meaning groups containing at least one word added
// on the given date.
func DateSelection(date string) Selection {
	return Selection{date: date}
}

// String describes the selection for logs and messages.
func (sel Selection) String() string {
	if sel.negative {
		return "negative-score words"
	}
	return "words of " + sel.date
}

// Mode picks the question variant.
type Mode int

const (
	// ModeMeaningChoice shows one English word and Chinese meaning options.
	ModeMeaningChoice Mode = iota
	// ModeWordChoice shows an English stem and English word options; every
	// word sharing the meaning (capped at two) must be selected.
	ModeWordChoice
)

// Question is one ephemeral quiz item.
type Question struct {
	Mode          Mode
	Prompt        string   // English stem shown to the user
	Meaning       string   // the correct Chinese meaning
	CorrectWords  []string // correct answer word set, lowest score first
	Choices       []string // shuffled options: meanings or words depending on Mode
	Number        int      // 1-based position in the session
	Total         int
	FromWrongList bool
}

// Generator builds quiz sessions from the word store.
type Generator struct {
	store       *wordbook.Store
	sampler     *Sampler
	choiceCount int
}

// NewGenerator creates a generator. choiceCount values below two fall back to
// DefaultChoiceCount.
func NewGenerator(store *wordbook.Store, sampler *Sampler, choiceCount int) *Generator {
	if choiceCount < 2 {
		choiceCount = DefaultChoiceCount
	}
	return &Generator{store: store, sampler: sampler, choiceCount: choiceCount}
}

// Start builds a session over the meaning groups matching the selection,
// ordered ascending by each group's minimum member score so the weakest
// meanings come first. Ties keep their original group order.
func (g *Generator) Start(sel Selection, mode Mode) (*Session, error) {
	var order []string
	for _, group := range g.store.GroupsByMeaning() {
		if g.matches(group, sel) {
			order = append(order, group.Meaning)
		}
	}
	if len(order) == 0 {
		return nil, ErrEmptySelection
	}

	sort.SliceStable(order, func(i, j int) bool {
		gi, _ := g.store.Group(order[i])
		gj, _ := g.store.Group(order[j])
		return g.store.MinScore(gi) < g.store.MinScore(gj)
	})

	return &Session{gen: g, mode: mode, order: order}, nil
}

func (g *Generator) matches(group wordbook.MeaningGroup, sel Selection) bool {
	for _, english := range group.Words {
		word, ok := g.store.Find(english)
		if !ok {
			continue
		}
		if sel.negative {
			if word.Score < 0 {
				return true
			}
		} else if word.Date == sel.date {
			return true
		}
	}
	return false
}

// buildQuestion assembles a question for a meaning group in the given mode.
func (g *Generator) buildQuestion(group wordbook.MeaningGroup, mode Mode) Question {
	words := g.store.WordsByScore(group)
	q := Question{Mode: mode, Meaning: group.Meaning}

	switch mode {
	case ModeWordChoice:
		correct := words
		if len(correct) > 2 {
			correct = correct[:2]
		}
		q.Prompt = correct[0]
		q.CorrectWords = correct
		q.Choices = append([]string{}, correct...)
		q.Choices = append(q.Choices,
			g.sampler.Words(g.store.GroupsByMeaning(), group, g.choiceCount-len(correct))...)
	default:
		q.Prompt = words[0]
		q.CorrectWords = words[:1]
		q.Choices = append([]string{group.Meaning},
			g.sampler.Meanings(g.store.GroupsByMeaning(), group, g.choiceCount-1)...)
	}
	g.sampler.Shuffle(q.Choices)
	return q
}

// State reports where a session stands.
type State int

const (
	// StateIdle means no question has been served yet.
	StateIdle State = iota
	StateInProgress
	StateFinished
)

// Session is a single pass over an ordered question sequence. The cursor only
// moves forward, except when the current word is deleted: then it steps back
// one position so the next call serves what slid into the same slot.
type Session struct {
	gen     *Generator
	mode    Mode
	order   []string
	cursor  int
	current *Question
}

// HasNext reports whether another question remains.
func (s *Session) HasNext() bool {
	return s.cursor < len(s.order)
}

// State returns StateFinished once the cursor passes the last question.
func (s *Session) State() State {
	switch {
	case s.cursor == 0:
		return StateIdle
	case s.HasNext():
		return StateInProgress
	default:
		return StateFinished
	}
}

// Total returns the number of questions in the session.
func (s *Session) Total() int {
	return len(s.order)
}

// Next serves the next question and advances the cursor. It returns false
// once the session is finished.
func (s *Session) Next() (Question, bool) {
	for s.cursor < len(s.order) {
		group, ok := s.gen.store.Group(s.order[s.cursor])
		if !ok {
			// Group vanished through deletions elsewhere; skip its slot.
			s.order = append(s.order[:s.cursor], s.order[s.cursor+1:]...)
			continue
		}
		s.cursor++
		q := s.gen.buildQuestion(group, s.mode)
		q.Number = s.cursor
		q.Total = len(s.order)
		s.current = &q
		return q, true
	}
	s.current = nil
	return Question{}, false
}

// DeleteCurrentWord removes the served question's prompt word from the store
// and steps the cursor back one position. When the word was the last member
// of its meaning group, the group's slot is dropped from the ordering.
func (s *Session) DeleteCurrentWord() bool {
	if s.current == nil || s.cursor == 0 {
		return false
	}
	s.gen.store.Remove(s.current.Prompt)
	if _, ok := s.gen.store.Group(s.current.Meaning); !ok {
		s.order = append(s.order[:s.cursor-1], s.order[s.cursor:]...)
	}
	s.cursor--
	s.current = nil
	return true
}
