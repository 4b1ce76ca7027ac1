package wordbook

import "sort"

// MeaningGroup is the set of English words sharing one Chinese meaning.
// Words keep the order in which they appear in the store.
type MeaningGroup struct {
	Meaning string
	Words   []string
}

// DateGroup buckets the words added on one date.
type DateGroup struct {
	Date  string
	Words []Word
}

// Store is the authoritative in-memory list of word records plus a derived
// meaning-grouping index. The index is rebuilt in full whenever membership
// changes; for a personal vocabulary list of hundreds to low thousands of
// words that is cheaper than keeping it incremental.
type Store struct {
	words      []Word
	groups     []MeaningGroup
	groupIndex map[string]int
}

// NewStore creates a store holding the given records.
func NewStore(words []Word) *Store {
	s := &Store{}
	s.Load(words)
	return s
}

// Load replaces the store contents and rebuilds the meaning-group index.
func (s *Store) Load(words []Word) {
	s.words = make([]Word, len(words))
	copy(s.words, words)
	s.rebuildGroups()
}

func (s *Store) rebuildGroups() {
	s.groups = nil
	s.groupIndex = make(map[string]int)
	for _, w := range s.words {
		i, ok := s.groupIndex[w.Chinese]
		if !ok {
			i = len(s.groups)
			s.groupIndex[w.Chinese] = i
			s.groups = append(s.groups, MeaningGroup{Meaning: w.Chinese})
		}
		s.groups[i].Words = append(s.groups[i].Words, w.English)
	}
}

// Words returns a copy of all word records in store order.
func (s *Store) Words() []Word {
	words := make([]Word, len(s.words))
	copy(words, s.words)
	return words
}

// Len returns the number of word records.
func (s *Store) Len() int {
	return len(s.words)
}

// Find returns the record for an English word.
func (s *Store) Find(english string) (Word, bool) {
	for _, w := range s.words {
		if w.English == english {
			return w, true
		}
	}
	return Word{}, false
}

// Add appends a new word with score 0. It is a no-op when the English word is
// already present (case-sensitive exact match) and reports whether a record
// was added.
func (s *Store) Add(english, chinese, date string) bool {
	if _, ok := s.Find(english); ok {
		return false
	}
	if date == "" {
		date = UnspecifiedDate
	}
	s.words = append(s.words, Word{English: english, Chinese: chinese, Date: date})
	s.rebuildGroups()
	return true
}

// Remove deletes the record for an English word and reports whether a record
// was removed.
func (s *Store) Remove(english string) bool {
	for i, w := range s.words {
		if w.English == english {
			s.words = append(s.words[:i], s.words[i+1:]...)
			s.rebuildGroups()
			return true
		}
	}
	return false
}

// AdjustScore adds delta to a word's score. Unknown words are ignored.
func (s *Store) AdjustScore(english string, delta int) {
	for i := range s.words {
		if s.words[i].English == english {
			s.words[i].Score += delta
			return
		}
	}
}

// AdjustScores adds delta to the score of every listed word.
func (s *Store) AdjustScores(english []string, delta int) {
	for _, e := range english {
		s.AdjustScore(e, delta)
	}
}

// Score returns a word's score, or 0 when the word is absent.
func (s *Store) Score(english string) int {
	w, ok := s.Find(english)
	if !ok {
		return 0
	}
	return w.Score
}

// GroupsByMeaning returns all meaning groups in first-appearance order.
func (s *Store) GroupsByMeaning() []MeaningGroup {
	groups := make([]MeaningGroup, len(s.groups))
	for i, g := range s.groups {
		words := make([]string, len(g.Words))
		copy(words, g.Words)
		groups[i] = MeaningGroup{Meaning: g.Meaning, Words: words}
	}
	return groups
}

// Group returns the meaning group for a Chinese meaning.
func (s *Store) Group(meaning string) (MeaningGroup, bool) {
	i, ok := s.groupIndex[meaning]
	if !ok {
		return MeaningGroup{}, false
	}
	g := s.groups[i]
	words := make([]string, len(g.Words))
	copy(words, g.Words)
	return MeaningGroup{Meaning: g.Meaning, Words: words}, true
}

// MinScore returns the minimum score among a group's member words.
func (s *Store) MinScore(group MeaningGroup) int {
	min := 0
	for i, w := range group.Words {
		score := s.Score(w)
		if i == 0 || score < min {
			min = score
		}
	}
	return min
}

// WordsByScore returns a group's member words ordered ascending by score,
// keeping store order for equal scores.
func (s *Store) WordsByScore(group MeaningGroup) []string {
	words := make([]string, len(group.Words))
	copy(words, group.Words)
	sort.SliceStable(words, func(i, j int) bool {
		return s.Score(words[i]) < s.Score(words[j])
	})
	return words
}

// GroupsByDate returns the words bucketed by date, newest date first, each
// bucket ordered ascending by score.
func (s *Store) GroupsByDate() []DateGroup {
	buckets := make(map[string][]Word)
	var dates []string
	for _, w := range s.words {
		date := w.Date
		if date == "" {
			date = UnspecifiedDate
		}
		if _, ok := buckets[date]; !ok {
			dates = append(dates, date)
		}
		buckets[date] = append(buckets[date], w)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]DateGroup, 0, len(dates))
	for _, date := range dates {
		words := buckets[date]
		sort.SliceStable(words, func(i, j int) bool {
			return words[i].Score < words[j].Score
		})
		groups = append(groups, DateGroup{Date: date, Words: words})
	}
	return groups
}

// Dates returns the distinct word dates in ascending order.
func (s *Store) Dates() []string {
	seen := make(map[string]struct{})
	var dates []string
	for _, w := range s.words {
		if w.Date == "" {
			continue
		}
		if _, ok := seen[w.Date]; ok {
			continue
		}
		seen[w.Date] = struct{}{}
		dates = append(dates, w.Date)
	}
	sort.Strings(dates)
	return dates
}
