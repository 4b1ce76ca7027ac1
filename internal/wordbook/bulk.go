package wordbook

import "strings"

// BulkPair is one parsed line of a bulk-add input.
type BulkPair struct {
	English string
	Chinese string
}

// ParseBulk parses bulk-add text where each line holds an
// "english, chinese" pair. Lines without at least two comma-separated
// non-empty fields are skipped; extra fields beyond the second are ignored.
func ParseBulk(text string) []BulkPair {
	var pairs []BulkPair
	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		english := strings.TrimSpace(parts[0])
		chinese := strings.TrimSpace(parts[1])
		if english == "" || chinese == "" {
			continue
		}
		pairs = append(pairs, BulkPair{English: english, Chinese: chinese})
	}
	return pairs
}

// AddBulk adds every parsed pair to the store, stamping new words with the
// given date. Duplicate English words are silently skipped. It returns the
// number of words actually added.
func (s *Store) AddBulk(pairs []BulkPair, date string) int {
	added := 0
	for _, p := range pairs {
		if s.Add(p.English, p.Chinese, date) {
			added++
		}
	}
	return added
}
