package wordbook

// Level is a mastery band derived from a word's score. More negative scores
// mean weaker recall.
type Level string

const (
	LevelVeryPoor Level = "very poor"
	LevelPoor     Level = "poor"
	LevelWeak     Level = "weak"
	LevelAverage  Level = "average"
	LevelGood     Level = "good"
	LevelMastered Level = "mastered"
)

// LevelFor maps a score to its mastery band. The thresholds follow the
// flashcard coloring of the original record format: -5 and below, -3 and
// below, below zero, zero, up to 3, and above.
func LevelFor(score int) Level {
	switch {
	case score <= -5:
		return LevelVeryPoor
	case score <= -3:
		return LevelPoor
	case score < 0:
		return LevelWeak
	case score == 0:
		return LevelAverage
	case score <= 3:
		return LevelGood
	default:
		return LevelMastered
	}
}
