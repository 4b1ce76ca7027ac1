// Package quiz generates multiple-choice vocabulary questions, evaluates
// answers, and drives the quiz and wrong-list replay sessions.
package quiz

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

// maxSampleAttempts bounds the total number of draws in one sampling call.
// Within the bound the sampler is strict: a distractor is only drawn from
// candidates whose word sets are disjoint from the correct answer's words.
// Once the conflict-free pool is exhausted it degrades to drawing any
// remaining candidate, logging each degraded pick.
const maxSampleAttempts = 50

// Sampler picks plausible wrong options for a question by uniform random
// sampling without replacement.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler. A nil rng falls back to a time-seeded source;
// tests pass a fixed seed.
func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

type candidate struct {
	label string
	words []string
}

// Meanings picks up to n distractor meanings for the given correct group.
// Callers must tolerate a short result when fewer candidates exist.
func (s *Sampler) Meanings(groups []wordbook.MeaningGroup, correct wordbook.MeaningGroup, n int) []string {
	var pool []candidate
	for _, g := range groups {
		if g.Meaning == correct.Meaning {
			continue
		}
		pool = append(pool, candidate{label: g.Meaning, words: g.Words})
	}
	return s.pick(pool, correct.Words, n)
}

// Words picks up to n distractor words drawn from groups other than the
// correct one.
func (s *Sampler) Words(groups []wordbook.MeaningGroup, correct wordbook.MeaningGroup, n int) []string {
	var pool []candidate
	for _, g := range groups {
		if g.Meaning == correct.Meaning {
			continue
		}
		for _, w := range g.Words {
			pool = append(pool, candidate{label: w, words: []string{w}})
		}
	}
	return s.pick(pool, correct.Words, n)
}

// Shuffle randomizes a choice list in place.
func (s *Sampler) Shuffle(items []string) {
	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func (s *Sampler) pick(pool []candidate, correctWords []string, n int) []string {
	correct := make(map[string]struct{}, len(correctWords))
	for _, w := range correctWords {
		correct[w] = struct{}{}
	}

	var eligible, overlapping []candidate
	for _, c := range pool {
		if intersects(c.words, correct) {
			overlapping = append(overlapping, c)
		} else {
			eligible = append(eligible, c)
		}
	}

	var picked []string
	for attempts := 0; len(picked) < n && attempts < maxSampleAttempts; attempts++ {
		switch {
		case len(eligible) > 0:
			i := s.rng.Intn(len(eligible))
			picked = append(picked, eligible[i].label)
			eligible = append(eligible[:i], eligible[i+1:]...)
		case len(overlapping) > 0:
			i := s.rng.Intn(len(overlapping))
			slog.Default().Warn("conflict-free distractor pool exhausted, accepting overlapping candidate",
				"candidate", overlapping[i].label,
			)
			picked = append(picked, overlapping[i].label)
			overlapping = append(overlapping[:i], overlapping[i+1:]...)
		default:
			return picked
		}
	}
	return picked
}

func intersects(words []string, set map[string]struct{}) bool {
	for _, w := range words {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}
