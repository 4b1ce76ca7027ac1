package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

func newTestReplay(entries []wordbook.WrongEntry) (*ReplaySession, *wordbook.Store, *wordbook.WrongList) {
	store := wordbook.NewStore([]wordbook.Word{
		{English: "cat", Chinese: "猫", Score: -1},
		{English: "dog", Chinese: "狗", Score: 0},
		{English: "run", Chinese: "跑", Score: 0},
		{English: "jump", Chinese: "跳", Score: 0},
		{English: "walk", Chinese: "走", Score: 0},
	})
	wrong := wordbook.NewWrongList(entries)
	sampler := NewSampler(rand.New(rand.NewSource(1)))
	return NewReplaySession(store, wrong, sampler, DefaultChoiceCount), store, wrong
}

func TestReplaySessionServesStoredOrder(t *testing.T) {
	// Replay keeps the stored order, never reordering by score.
	entries := []wordbook.WrongEntry{
		{Meaning: "跑", Correct: []string{"run"}},
		{Meaning: "猫", Correct: []string{"cat"}},
		{Meaning: "狗", Correct: []string{"dog"}},
	}
	replay, _, _ := newTestReplay(entries)

	var meanings []string
	for replay.HasNext() {
		q, ok := replay.Next()
		require.True(t, ok)
		meanings = append(meanings, q.Meaning)
		assert.True(t, q.FromWrongList)
		assert.Contains(t, q.Choices, q.Meaning)
	}
	assert.Equal(t, []string{"跑", "猫", "狗"}, meanings)

	_, ok := replay.Next()
	assert.False(t, ok)
}

func TestReplaySessionCapsPromptWords(t *testing.T) {
	entries := []wordbook.WrongEntry{
		{Meaning: "猫", Correct: []string{"cat", "feline", "kitty"}},
	}
	replay, _, _ := newTestReplay(entries)

	q, ok := replay.Next()
	require.True(t, ok)
	assert.Equal(t, "cat", q.Prompt)
	// The stored correct-word set is reused, capped at two.
	assert.Equal(t, []string{"cat", "feline"}, q.CorrectWords)
}

func TestReplaySessionSkipsEntriesWithoutCorrectWords(t *testing.T) {
	// Records written by other clients can carry entries with an empty
	// correct-word set. Those cannot be asked, so the replay skips them.
	entries := []wordbook.WrongEntry{
		{Meaning: "狗", Correct: []string{}},
		{Meaning: "猫", Correct: []string{"cat"}},
	}
	replay, _, wrong := newTestReplay(entries)

	q, ok := replay.Next()
	require.True(t, ok)
	assert.Equal(t, "猫", q.Meaning)
	assert.Equal(t, "cat", q.Prompt)

	_, ok = replay.Next()
	assert.False(t, ok)
	// The unservable entry stays in the stored list untouched.
	assert.Equal(t, 2, wrong.Len())
}

func TestReplaySessionAllEntriesWithoutCorrectWords(t *testing.T) {
	entries := []wordbook.WrongEntry{
		{Meaning: "狗", Correct: nil},
	}
	replay, _, _ := newTestReplay(entries)

	assert.True(t, replay.HasNext())
	_, ok := replay.Next()
	assert.False(t, ok)
}

func TestReplaySessionEntryRemoved(t *testing.T) {
	entries := []wordbook.WrongEntry{
		{Meaning: "猫", Correct: []string{"cat"}},
		{Meaning: "狗", Correct: []string{"dog"}},
	}
	replay, store, wrong := newTestReplay(entries)
	eval := NewEvaluator(store, wrong)

	q, ok := replay.Next()
	require.True(t, ok)
	assert.Equal(t, "猫", q.Meaning)

	// A correct retry removes the entry; stepping the cursor back keeps the
	// next call on the entry that slid into its position.
	verdict, err := eval.Submit(q, "猫")
	require.NoError(t, err)
	require.True(t, verdict.RemovedFromWrongList)
	replay.EntryRemoved()

	q, ok = replay.Next()
	require.True(t, ok)
	assert.Equal(t, "狗", q.Meaning)
	assert.False(t, replay.HasNext())
}

func TestReplaySessionRepeatFailureKeepsEntry(t *testing.T) {
	entries := []wordbook.WrongEntry{
		{Meaning: "猫", Correct: []string{"cat"}},
	}
	replay, store, wrong := newTestReplay(entries)
	eval := NewEvaluator(store, wrong)

	q, ok := replay.Next()
	require.True(t, ok)

	verdict := eval.DontKnow(q)
	assert.False(t, verdict.Correct)
	// The meaning is already present, so no duplicate entry appears.
	assert.False(t, verdict.AddedToWrongList)
	assert.Equal(t, 1, wrong.Len())
	assert.False(t, replay.HasNext())
}

func TestReplaySessionDeleteCurrent(t *testing.T) {
	entries := []wordbook.WrongEntry{
		{Meaning: "猫", Correct: []string{"cat"}},
		{Meaning: "狗", Correct: []string{"dog"}},
	}
	replay, _, wrong := newTestReplay(entries)

	// Nothing served yet, nothing to delete.
	assert.False(t, replay.DeleteCurrent())

	q, ok := replay.Next()
	require.True(t, ok)
	assert.Equal(t, "猫", q.Meaning)

	require.True(t, replay.DeleteCurrent())
	assert.Equal(t, 1, wrong.Len())

	q, ok = replay.Next()
	require.True(t, ok)
	assert.Equal(t, "狗", q.Meaning)

	// Deleting the last remaining entry finishes the training.
	require.True(t, replay.DeleteCurrent())
	assert.False(t, replay.HasNext())
	assert.True(t, wrong.IsEmpty())
}
