package itemgen

// ExerciseType identifies how the learner answers an item.
type ExerciseType string

const (
	TypeMultipleChoice    ExerciseType = "multiple_choice"
	TypeFillBlank         ExerciseType = "fill_blank"
	TypeTranslation       ExerciseType = "translation"
	TypeConjugation       ExerciseType = "conjugation"
	TypeSentenceStructure ExerciseType = "sentence_structure"
)

// ExerciseTypes lists every type in canonical order.
var ExerciseTypes = []ExerciseType{
	TypeMultipleChoice,
	TypeFillBlank,
	TypeTranslation,
	TypeConjugation,
	TypeSentenceStructure,
}

// ValidExerciseType reports whether t is a known exercise type.
func ValidExerciseType(t ExerciseType) bool {
	for _, known := range ExerciseTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Difficulty is a tier bucket used for generation and scoring weight.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every tier in canonical order. Iteration over this
// slice is the documented tie-break for dominant-difficulty selection.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ValidDifficulty reports whether d is a known tier.
func ValidDifficulty(d Difficulty) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Level is a CEFR proficiency level.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists every level in ascending order.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// ValidLevel reports whether l is a known level.
func ValidLevel(l Level) bool {
	for _, known := range Levels {
		if l == known {
			return true
		}
	}
	return false
}

// Split is a difficulty-percentage distribution. Values should sum to 100.
type Split map[Difficulty]int

// DefaultSplit is the standard easy/medium/hard distribution.
func DefaultSplit() Split {
	return Split{
		DifficultyEasy:   35,
		DifficultyMedium: 45,
		DifficultyHard:   20,
	}
}

// ShareCount computes a percentage share of total by ceiling division.
// Used for both difficulty splits and exercise-type weights: the sum of
// shares over a distribution summing to 100 is at least total and less
// than total plus the number of shares.
func ShareCount(total int, percent int) int {
	if total <= 0 || percent <= 0 {
		return 0
	}
	return (total*percent + 99) / 100
}

// Topic identifies the subject matter items are generated for.
type Topic struct {
	ID          string
	Name        string
	Description string
}

// Request is the input to one generation attempt for a (topic, type) pair.
type Request struct {
	Topic        Topic
	Level        Level
	ExerciseType ExerciseType

	// Count is the total number of items requested across all tiers.
	Count int

	// Split is the difficulty distribution. DefaultSplit when nil.
	Split Split

	// AvoidTexts are prior question texts the prompt steers away from,
	// on top of what the deduplication filter collects.
	AvoidTexts []string
}

// Item is one AI-produced question unit.
type Item struct {
	// Prompt is the question text shown to the learner. For fill_blank
	// items it contains exactly one blank marker.
	Prompt string `json:"prompt"`

	// Answer is the expected answer when a single answer applies.
	Answer string `json:"answer"`

	// Answers holds alternative accepted answers (e.g. translation
	// variants). Either Answer or Answers must be non-empty.
	Answers []string `json:"answers,omitempty"`

	// Options is populated only for multiple_choice items: exactly 4
	// options, one of which matches Answer.
	Options []string `json:"options,omitempty"`

	// Explanation is shown after the learner answers. Always present.
	Explanation string `json:"explanation"`

	// Difficulty is the tier this item was generated for.
	Difficulty Difficulty `json:"difficulty"`
}

// BlankMarker is the token a fill_blank prompt must contain exactly once.
const BlankMarker = "___"
