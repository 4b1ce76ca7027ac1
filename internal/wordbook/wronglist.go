package wordbook

// WrongEntry is a previously-missed meaning awaiting re-practice, along with
// the English words that would have answered it. The JSON field names match
// the remote user record.
type WrongEntry struct {
	Meaning string   `json:"meaning"`
	Correct []string `json:"correct"`
}

// WrongList is the remediation queue of missed meanings. At most one entry
// exists per distinct meaning.
type WrongList struct {
	entries []WrongEntry
}

// NewWrongList creates a wrong list holding the given entries.
func NewWrongList(entries []WrongEntry) *WrongList {
	l := &WrongList{entries: make([]WrongEntry, len(entries))}
	copy(l.entries, entries)
	return l
}

// Record inserts an entry for a missed meaning. The insert is idempotent: it
// is a no-op when the meaning is already present. It reports whether a new
// entry was added.
func (l *WrongList) Record(meaning string, correctWords []string) bool {
	if l.Contains(meaning) {
		return false
	}
	words := make([]string, len(correctWords))
	copy(words, correctWords)
	l.entries = append(l.entries, WrongEntry{Meaning: meaning, Correct: words})
	return true
}

// Contains reports whether the meaning has an entry.
func (l *WrongList) Contains(meaning string) bool {
	for _, e := range l.entries {
		if e.Meaning == meaning {
			return true
		}
	}
	return false
}

// RemoveAt deletes the entry at the given index and reports whether an entry
// was removed.
func (l *WrongList) RemoveAt(index int) bool {
	if index < 0 || index >= len(l.entries) {
		return false
	}
	l.entries = append(l.entries[:index], l.entries[index+1:]...)
	return true
}

// Remove deletes the entry for a meaning and reports whether an entry was
// removed.
func (l *WrongList) Remove(meaning string) bool {
	for i, e := range l.entries {
		if e.Meaning == meaning {
			return l.RemoveAt(i)
		}
	}
	return false
}

// EntryAt returns the entry at the given index.
func (l *WrongList) EntryAt(index int) (WrongEntry, bool) {
	if index < 0 || index >= len(l.entries) {
		return WrongEntry{}, false
	}
	return l.entries[index], true
}

// Entries returns a copy of all entries in stored order. Replay never reorders
// them by score, unlike the main quiz.
func (l *WrongList) Entries() []WrongEntry {
	entries := make([]WrongEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Len returns the number of entries.
func (l *WrongList) Len() int {
	return len(l.entries)
}

// IsEmpty reports whether the list has no entries.
func (l *WrongList) IsEmpty() bool {
	return len(l.entries) == 0
}
