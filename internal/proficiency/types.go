package proficiency

import "github.com/verbly-app/verbly/internal/itemgen"

// DifficultyWeight returns the evidence weight of a tier: harder
// exercises count for proportionally more evidence of mastery.
func DifficultyWeight(d itemgen.Difficulty) float64 {
	switch d {
	case itemgen.DifficultyMedium:
		return 1.5
	case itemgen.DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}

// Details is the analysis breakdown behind the headline numbers.
type Details struct {
	// TopicScores are difficulty-weighted average scores per topic.
	TopicScores map[string]float64

	// SkillScores are difficulty-weighted average scores per skill.
	SkillScores map[Skill]float64

	// DifficultyProgression reports whether the learner's recent work
	// trends toward harder tiers than their older work.
	DifficultyProgression bool

	// ConsistencyScore is 100 minus score variance, floored at 0.
	ConsistencyScore float64
}

// Analysis is a learner's derived proficiency picture. Recomputed per
// request, never persisted.
type Analysis struct {
	LearnerID string

	CurrentLevel    itemgen.Level
	ConfidenceScore float64

	// Strengths are topics scoring at or above 85, strongest first.
	Strengths []string

	// Weaknesses are topics scoring below 65, weakest first.
	Weaknesses []string

	RecommendedLevel itemgen.Level

	// ProgressToNextLevel averages ratio-to-target across every
	// graduation criterion of the current level. Range [0, 100].
	ProgressToNextLevel float64

	// ExercisesNeeded estimates the practice volume to reach the next
	// level. Range [10, 50].
	ExercisesNeeded int

	Details Details
}

// Thresholds for classifying topics.
const (
	strengthThreshold = 85.0
	weaknessThreshold = 65.0
)

// recommendThreshold is the progress above which the next level is
// recommended instead of repeating the current one.
const recommendThreshold = 80.0
