package wordbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWords() []Word {
	return []Word{
		{English: "cat", Chinese: "猫", Score: 0, Date: "2025-01-01"},
		{English: "feline", Chinese: "猫", Score: -2, Date: "2025-01-02"},
		{English: "dog", Chinese: "狗", Score: 3, Date: "2025-01-01"},
		{English: "run", Chinese: "跑", Score: -1, Date: "2025-01-02"},
	}
}

func TestStoreGroupsByMeaning(t *testing.T) {
	tests := []struct {
		name  string
		words []Word
		want  []MeaningGroup
	}{
		{
			name:  "empty store has no groups",
			words: nil,
			want:  nil,
		},
		{
			name:  "words sharing a meaning fall into one group",
			words: testWords(),
			want: []MeaningGroup{
				{Meaning: "猫", Words: []string{"cat", "feline"}},
				{Meaning: "狗", Words: []string{"dog"}},
				{Meaning: "跑", Words: []string{"run"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(tt.words)
			got := store.GroupsByMeaning()
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)

			// Every word belongs to exactly one group, keyed by its meaning.
			memberships := make(map[string]int)
			for _, g := range got {
				for _, w := range g.Words {
					memberships[w]++
					word, ok := store.Find(w)
					require.True(t, ok)
					assert.Equal(t, word.Chinese, g.Meaning)
				}
			}
			for _, w := range tt.words {
				assert.Equal(t, 1, memberships[w.English])
			}
		})
	}
}

func TestStoreAdd(t *testing.T) {
	tests := []struct {
		name      string
		english   string
		chinese   string
		date      string
		wantAdded bool
		wantLen   int
	}{
		{
			name:      "new word is appended with score 0",
			english:   "jump",
			chinese:   "跳",
			date:      "2025-02-01",
			wantAdded: true,
			wantLen:   5,
		},
		{
			name:      "duplicate english key is a silent no-op",
			english:   "cat",
			chinese:   "猫咪",
			date:      "2025-02-01",
			wantAdded: false,
			wantLen:   4,
		},
		{
			name:      "empty date defaults to unspecified",
			english:   "walk",
			chinese:   "走",
			date:      "",
			wantAdded: true,
			wantLen:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(testWords())
			added := store.Add(tt.english, tt.chinese, tt.date)

			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantLen, store.Len())
			if added {
				word, ok := store.Find(tt.english)
				require.True(t, ok)
				assert.Equal(t, 0, word.Score)
				if tt.date == "" {
					assert.Equal(t, UnspecifiedDate, word.Date)
				} else {
					assert.Equal(t, tt.date, word.Date)
				}
				// The group index reflects the new membership.
				group, ok := store.Group(tt.chinese)
				require.True(t, ok)
				assert.Contains(t, group.Words, tt.english)
			}
		})
	}
}

func TestStoreRemove(t *testing.T) {
	store := NewStore(testWords())

	assert.False(t, store.Remove("unknown"))
	assert.Equal(t, 4, store.Len())

	assert.True(t, store.Remove("dog"))
	assert.Equal(t, 3, store.Len())

	// The meaning group disappears with its last word.
	_, ok := store.Group("狗")
	assert.False(t, ok)

	// Removing one member keeps the group alive for the rest.
	assert.True(t, store.Remove("cat"))
	group, ok := store.Group("猫")
	require.True(t, ok)
	assert.Equal(t, []string{"feline"}, group.Words)
}

func TestStoreAdjustScore(t *testing.T) {
	store := NewStore(testWords())

	store.AdjustScore("cat", 1)
	assert.Equal(t, 1, store.Score("cat"))

	// +1 then -1 returns the score to its original value.
	store.AdjustScore("cat", -1)
	assert.Equal(t, 0, store.Score("cat"))

	// Unknown words are ignored and read as zero.
	store.AdjustScore("unknown", 5)
	assert.Equal(t, 0, store.Score("unknown"))

	// Scores are unbounded in both directions.
	store.AdjustScores([]string{"feline", "run"}, -10)
	assert.Equal(t, -12, store.Score("feline"))
	assert.Equal(t, -11, store.Score("run"))
}

func TestStoreGroupsByDate(t *testing.T) {
	store := NewStore([]Word{
		{English: "cat", Chinese: "猫", Score: 2, Date: "2025-01-01"},
		{English: "dog", Chinese: "狗", Score: -1, Date: "2025-01-01"},
		{English: "run", Chinese: "跑", Score: 0, Date: "2025-01-02"},
		{English: "old", Chinese: "旧", Score: 0, Date: ""},
	})

	groups := store.GroupsByDate()
	require.Len(t, groups, 3)

	// Newest date first, undated words under the unspecified bucket.
	assert.Equal(t, UnspecifiedDate, groups[0].Date)
	assert.Equal(t, "2025-01-02", groups[1].Date)
	assert.Equal(t, "2025-01-01", groups[2].Date)

	// Words within a date are ordered ascending by score.
	assert.Equal(t, "dog", groups[2].Words[0].English)
	assert.Equal(t, "cat", groups[2].Words[1].English)
}

func TestStoreDates(t *testing.T) {
	store := NewStore(testWords())
	assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, store.Dates())

	empty := NewStore(nil)
	assert.Empty(t, empty.Dates())
}

func TestStoreWordsByScore(t *testing.T) {
	store := NewStore(testWords())
	group, ok := store.Group("猫")
	require.True(t, ok)

	// Lowest score first: feline (-2) before cat (0).
	assert.Equal(t, []string{"feline", "cat"}, store.WordsByScore(group))
	assert.Equal(t, -2, store.MinScore(group))
}

func TestStoreLoadReplacesContents(t *testing.T) {
	store := NewStore(testWords())
	store.Load([]Word{{English: "new", Chinese: "新", Date: "2025-03-01"}})

	assert.Equal(t, 1, store.Len())
	_, ok := store.Group("猫")
	assert.False(t, ok)
	_, ok = store.Group("新")
	assert.True(t, ok)
}
