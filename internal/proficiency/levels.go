package proficiency

import "github.com/verbly-app/verbly/internal/itemgen"

// Skill is a scoring category derived from exercise types.
type Skill string

const (
	SkillGrammar       Skill = "grammar"
	SkillVocabulary    Skill = "vocabulary"
	SkillConjugation   Skill = "conjugation"
	SkillComprehension Skill = "comprehension"
)

// Skills lists every skill in canonical order.
var Skills = []Skill{SkillGrammar, SkillVocabulary, SkillConjugation, SkillComprehension}

// SkillFor maps an exercise type to the skill it exercises.
func SkillFor(t itemgen.ExerciseType) Skill {
	switch t {
	case itemgen.TypeMultipleChoice:
		return SkillVocabulary
	case itemgen.TypeFillBlank, itemgen.TypeSentenceStructure:
		return SkillGrammar
	case itemgen.TypeConjugation:
		return SkillConjugation
	case itemgen.TypeTranslation:
		return SkillComprehension
	default:
		return SkillComprehension
	}
}

// Requirement is the static graduation criteria for leaving a level.
type Requirement struct {
	// MinScore is the minimum recent average score.
	MinScore float64

	// RequiredTopics are the topic keys that must each be covered at the
	// level's coverage threshold.
	RequiredTopics []string

	// ExercisesPerTopic is the target practice volume per required topic.
	ExercisesPerTopic int

	// SkillThresholds are minimum per-skill scores.
	SkillThresholds map[Skill]float64
}

// Requirements is the process-wide level table, loaded once and never
// mutated at runtime.
var Requirements = map[itemgen.Level]Requirement{
	itemgen.LevelA1: {
		MinScore:          60,
		RequiredTopics:    []string{"greetings", "numbers", "articles", "present-tense", "basic-vocabulary"},
		ExercisesPerTopic: 10,
		SkillThresholds: map[Skill]float64{
			SkillGrammar:       60,
			SkillVocabulary:    65,
			SkillConjugation:   55,
			SkillComprehension: 60,
		},
	},
	itemgen.LevelA2: {
		MinScore:          65,
		RequiredTopics:    []string{"past-tense", "daily-routines", "food-drink", "directions", "comparatives"},
		ExercisesPerTopic: 12,
		SkillThresholds: map[Skill]float64{
			SkillGrammar:       65,
			SkillVocabulary:    70,
			SkillConjugation:   60,
			SkillComprehension: 65,
		},
	},
	itemgen.LevelB1: {
		MinScore:          70,
		RequiredTopics:    []string{"future-tense", "subjunctive-intro", "opinions", "narration"},
		ExercisesPerTopic: 15,
		SkillThresholds: map[Skill]float64{
			SkillGrammar:       70,
			SkillVocabulary:    75,
			SkillConjugation:   70,
			SkillComprehension: 70,
		},
	},
	itemgen.LevelB2: {
		MinScore:          75,
		RequiredTopics:    []string{"conditional", "passive-voice", "idioms", "formal-register"},
		ExercisesPerTopic: 15,
		SkillThresholds: map[Skill]float64{
			SkillGrammar:       75,
			SkillVocabulary:    80,
			SkillConjugation:   75,
			SkillComprehension: 75,
		},
	},
	itemgen.LevelC1: {
		MinScore:          80,
		RequiredTopics:    []string{"advanced-idioms", "nuance-register", "academic-writing", "debate"},
		ExercisesPerTopic: 18,
		SkillThresholds: map[Skill]float64{
			SkillGrammar:       80,
			SkillVocabulary:    85,
			SkillConjugation:   80,
			SkillComprehension: 85,
		},
	},
	itemgen.LevelC2: {
		MinScore:          85,
		RequiredTopics:    []string{"stylistics", "literary-analysis", "specialized-vocabulary"},
		ExercisesPerTopic: 20,
		SkillThresholds: map[Skill]float64{
			SkillGrammar:       85,
			SkillVocabulary:    90,
			SkillConjugation:   85,
			SkillComprehension: 90,
		},
	},
}

// CoverageThreshold is the minimum per-topic score for a required topic
// to count as met when leaving the given level.
func CoverageThreshold(level itemgen.Level) float64 {
	if level == itemgen.LevelA1 {
		return 70
	}
	return 75
}

// NextLevel returns the level after l, or l and false at the top.
func NextLevel(l itemgen.Level) (itemgen.Level, bool) {
	for i, known := range itemgen.Levels {
		if known == l {
			if i+1 < len(itemgen.Levels) {
				return itemgen.Levels[i+1], true
			}
			return l, false
		}
	}
	return l, false
}
