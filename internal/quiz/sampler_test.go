package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

func TestSamplerMeanings(t *testing.T) {
	groups := []wordbook.MeaningGroup{
		{Meaning: "猫", Words: []string{"cat", "feline"}},
		{Meaning: "狗", Words: []string{"dog"}},
		{Meaning: "跑", Words: []string{"run"}},
		{Meaning: "跳", Words: []string{"jump"}},
		{Meaning: "走", Words: []string{"walk"}},
	}
	correct := groups[0]

	// The distractor word sets never intersect the correct answer's words,
	// whatever the seed.
	for seed := int64(0); seed < 20; seed++ {
		sampler := NewSampler(rand.New(rand.NewSource(seed)))
		picked := sampler.Meanings(groups, correct, 3)

		require.Len(t, picked, 3, "seed %d", seed)
		seen := make(map[string]struct{})
		for _, meaning := range picked {
			assert.NotEqual(t, correct.Meaning, meaning)
			_, dup := seen[meaning]
			assert.False(t, dup, "meaning %s picked twice", meaning)
			seen[meaning] = struct{}{}
		}
	}
}

func TestSamplerMeaningsShortPool(t *testing.T) {
	groups := []wordbook.MeaningGroup{
		{Meaning: "猫", Words: []string{"cat"}},
		{Meaning: "狗", Words: []string{"dog"}},
	}
	sampler := NewSampler(rand.New(rand.NewSource(1)))

	// Only one eligible candidate exists; callers tolerate the short result.
	picked := sampler.Meanings(groups, groups[0], 3)
	assert.Equal(t, []string{"狗"}, picked)
}

func TestSamplerMeaningsSkipsOverlappingGroups(t *testing.T) {
	groups := []wordbook.MeaningGroup{
		{Meaning: "猫", Words: []string{"cat", "feline"}},
		{Meaning: "猫科", Words: []string{"feline"}}, // shares a word with the answer
		{Meaning: "狗", Words: []string{"dog"}},
	}
	for seed := int64(0); seed < 20; seed++ {
		sampler := NewSampler(rand.New(rand.NewSource(seed)))
		picked := sampler.Meanings(groups, groups[0], 1)
		assert.Equal(t, []string{"狗"}, picked, "seed %d", seed)
	}
}

func TestSamplerMeaningsDegradesWhenOnlyOverlapsRemain(t *testing.T) {
	groups := []wordbook.MeaningGroup{
		{Meaning: "猫", Words: []string{"cat"}},
		{Meaning: "猫咪", Words: []string{"cat"}},
	}
	sampler := NewSampler(rand.New(rand.NewSource(1)))

	// Every candidate overlaps the answer set; the sampler still produces a
	// distractor rather than an empty question.
	picked := sampler.Meanings(groups, groups[0], 1)
	assert.Equal(t, []string{"猫咪"}, picked)
}

func TestSamplerWords(t *testing.T) {
	groups := []wordbook.MeaningGroup{
		{Meaning: "猫", Words: []string{"cat", "feline"}},
		{Meaning: "狗", Words: []string{"dog", "hound"}},
		{Meaning: "跑", Words: []string{"run"}},
	}
	correct := groups[0]

	for seed := int64(0); seed < 20; seed++ {
		sampler := NewSampler(rand.New(rand.NewSource(seed)))
		picked := sampler.Words(groups, correct, 2)

		require.Len(t, picked, 2, "seed %d", seed)
		for _, w := range picked {
			assert.NotContains(t, correct.Words, w)
		}
	}
}

func TestSamplerShuffleKeepsSet(t *testing.T) {
	sampler := NewSampler(rand.New(rand.NewSource(42)))
	items := []string{"a", "b", "c", "d"}
	sampler.Shuffle(items)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, items)
}

func TestSamplerUniformWithoutReplacement(t *testing.T) {
	var groups []wordbook.MeaningGroup
	groups = append(groups, wordbook.MeaningGroup{Meaning: "correct", Words: []string{"w"}})
	for i := 0; i < 10; i++ {
		meaning := fmt.Sprintf("m%d", i)
		groups = append(groups, wordbook.MeaningGroup{Meaning: meaning, Words: []string{meaning + "-word"}})
	}

	sampler := NewSampler(rand.New(rand.NewSource(7)))
	picked := sampler.Meanings(groups, groups[0], 10)
	assert.Len(t, picked, 10)

	seen := make(map[string]struct{})
	for _, m := range picked {
		_, dup := seen[m]
		require.False(t, dup, "candidate %s drawn twice", m)
		seen[m] = struct{}{}
	}
}
