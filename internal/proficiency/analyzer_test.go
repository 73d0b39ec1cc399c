package proficiency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbly-app/verbly/internal/itemgen"
	"github.com/verbly-app/verbly/internal/store"
)

type fakePerformance struct {
	records []store.PerformanceData
	err     error
}

func (f *fakePerformance) RecentByLearner(_ context.Context, learnerID string, limit int) ([]store.PerformanceData, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

type fakeSnapshots struct {
	snap *store.LevelProgressData
	err  error
}

func (f *fakeSnapshots) Latest(_ context.Context, learnerID string) (*store.LevelProgressData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

func rec(topic string, etype itemgen.ExerciseType, diff itemgen.Difficulty, score float64) store.PerformanceData {
	return store.PerformanceData{
		LearnerID:    "learner-1",
		Topic:        topic,
		ExerciseType: string(etype),
		Difficulty:   string(diff),
		Score:        score,
		CompletedAt:  time.Now(),
	}
}

func newTestAnalyzer(records []store.PerformanceData, snap *store.LevelProgressData) *Analyzer {
	return NewAnalyzer(&fakePerformance{records: records}, &fakeSnapshots{snap: snap})
}

func TestAnalyze_NoData(t *testing.T) {
	a := newTestAnalyzer(nil, nil)

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)

	assert.Equal(t, itemgen.LevelA1, analysis.CurrentLevel)
	assert.Equal(t, itemgen.LevelA1, analysis.RecommendedLevel)
	assert.Zero(t, analysis.ConfidenceScore)
	assert.Zero(t, analysis.ProgressToNextLevel)
	assert.Equal(t, 10, analysis.ExercisesNeeded)
	assert.Empty(t, analysis.Strengths)
	assert.Empty(t, analysis.Weaknesses)
}

func TestAnalyze_SnapshotFallback(t *testing.T) {
	snap := &store.LevelProgressData{
		LearnerID: "learner-1",
		Level:     "B1",
		TopicScores: map[string]float64{
			"opinions":  88,
			"narration": 55,
		},
	}
	a := newTestAnalyzer(nil, snap)

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)

	assert.Equal(t, itemgen.LevelB1, analysis.CurrentLevel)
	assert.Equal(t, snapshotConfidence, analysis.ConfidenceScore,
		"the degraded path carries fixed reduced confidence")
	assert.Contains(t, analysis.Strengths, "opinions")
	assert.Contains(t, analysis.Weaknesses, "narration")
}

func TestAnalyze_SnapshotWithBadLevel(t *testing.T) {
	a := newTestAnalyzer(nil, &store.LevelProgressData{Level: "garbage"})

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)
	assert.Equal(t, itemgen.LevelA1, analysis.CurrentLevel)
}

func TestAnalyze_StoreErrorPropagates(t *testing.T) {
	a := NewAnalyzer(&fakePerformance{err: errors.New("db locked")}, &fakeSnapshots{})
	_, err := a.Analyze(context.Background(), "learner-1")
	require.Error(t, err)
}

func TestAnalyze_WeightedTopicScores(t *testing.T) {
	records := []store.PerformanceData{
		rec("articles", itemgen.TypeMultipleChoice, itemgen.DifficultyEasy, 60),
		rec("articles", itemgen.TypeMultipleChoice, itemgen.DifficultyHard, 90),
	}
	a := newTestAnalyzer(records, nil)

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)

	// (60*1.0 + 90*2.0) / (1.0 + 2.0) = 80: the hard attempt counts double.
	assert.InDelta(t, 80.0, analysis.Details.TopicScores["articles"], 0.001)
	assert.InDelta(t, 80.0, analysis.Details.SkillScores[SkillVocabulary], 0.001)
}

func TestAnalyze_WeightedScoresStayInRange(t *testing.T) {
	records := []store.PerformanceData{
		rec("articles", itemgen.TypeFillBlank, itemgen.DifficultyHard, 100),
		rec("articles", itemgen.TypeFillBlank, itemgen.DifficultyHard, 100),
	}
	a := newTestAnalyzer(records, nil)

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)
	assert.LessOrEqual(t, analysis.Details.TopicScores["articles"], 100.0)
}

// a1CoveredRecords covers every A1 required topic above the coverage
// threshold, spread across all four skills.
func a1CoveredRecords(score float64) []store.PerformanceData {
	return []store.PerformanceData{
		rec("greetings", itemgen.TypeMultipleChoice, itemgen.DifficultyEasy, score),
		rec("numbers", itemgen.TypeFillBlank, itemgen.DifficultyEasy, score),
		rec("articles", itemgen.TypeConjugation, itemgen.DifficultyEasy, score),
		rec("present-tense", itemgen.TypeTranslation, itemgen.DifficultyEasy, score),
		rec("basic-vocabulary", itemgen.TypeMultipleChoice, itemgen.DifficultyEasy, score),
	}
}

func TestAnalyze_LevelAdvancesWhenCriteriaMet(t *testing.T) {
	a := newTestAnalyzer(a1CoveredRecords(90), nil)

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)

	// A1 is cleared (avg 90, all topics covered) but A2's topics are
	// untouched, so progression stops one step up.
	assert.Equal(t, itemgen.LevelA2, analysis.CurrentLevel)
}

func TestAnalyze_LowAverageBlocksAdvancement(t *testing.T) {
	a := newTestAnalyzer(a1CoveredRecords(55), nil)

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)
	assert.Equal(t, itemgen.LevelA1, analysis.CurrentLevel)
}

func TestAnalyze_MissingTopicBlocksAdvancement(t *testing.T) {
	records := a1CoveredRecords(90)[:4] // basic-vocabulary never practiced
	a := newTestAnalyzer(records, nil)

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)
	assert.Equal(t, itemgen.LevelA1, analysis.CurrentLevel)
}

func TestAnalyze_StrengthsAndWeaknessesSorted(t *testing.T) {
	records := []store.PerformanceData{
		rec("greetings", itemgen.TypeMultipleChoice, itemgen.DifficultyEasy, 90),
		rec("numbers", itemgen.TypeMultipleChoice, itemgen.DifficultyEasy, 95),
		rec("articles", itemgen.TypeMultipleChoice, itemgen.DifficultyEasy, 50),
		rec("present-tense", itemgen.TypeMultipleChoice, itemgen.DifficultyEasy, 40),
		rec("food-drink", itemgen.TypeMultipleChoice, itemgen.DifficultyEasy, 75),
	}
	a := newTestAnalyzer(records, nil)

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"numbers", "greetings"}, analysis.Strengths, "strongest first")
	assert.Equal(t, []string{"present-tense", "articles"}, analysis.Weaknesses, "weakest first")
	assert.NotContains(t, analysis.Strengths, "food-drink", "mid-range topics are neutral")
	assert.NotContains(t, analysis.Weaknesses, "food-drink")
}

func TestAnalyze_RecommendsNextLevelWhenProgressHigh(t *testing.T) {
	// A1 cleared, every A2 topic practiced just under the coverage bar:
	// the learner sits at A2 with progress well above the recommend
	// threshold.
	records := append(a1CoveredRecords(90),
		rec("past-tense", itemgen.TypeFillBlank, itemgen.DifficultyEasy, 74),
		rec("daily-routines", itemgen.TypeMultipleChoice, itemgen.DifficultyEasy, 74),
		rec("food-drink", itemgen.TypeConjugation, itemgen.DifficultyEasy, 74),
		rec("directions", itemgen.TypeTranslation, itemgen.DifficultyEasy, 74),
		rec("comparatives", itemgen.TypeFillBlank, itemgen.DifficultyEasy, 74),
	)
	a := newTestAnalyzer(records, nil)

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)

	assert.Equal(t, itemgen.LevelA2, analysis.CurrentLevel)
	assert.Greater(t, analysis.ProgressToNextLevel, recommendThreshold)
	assert.Equal(t, itemgen.LevelB1, analysis.RecommendedLevel)
}

func TestAnalyze_NoRecommendationWhenProgressLow(t *testing.T) {
	a := newTestAnalyzer(a1CoveredRecords(90), nil)

	analysis, err := a.Analyze(context.Background(), "learner-1")
	require.NoError(t, err)

	assert.Equal(t, itemgen.LevelA2, analysis.CurrentLevel)
	assert.Equal(t, itemgen.LevelA2, analysis.RecommendedLevel,
		"A2 topics untouched, so progress is low")
}

func TestAnalyze_ProgressStaysInRange(t *testing.T) {
	cases := [][]store.PerformanceData{
		a1CoveredRecords(90),
		a1CoveredRecords(30),
		{rec("articles", itemgen.TypeFillBlank, itemgen.DifficultyHard, 100)},
	}
	for _, records := range cases {
		a := newTestAnalyzer(records, nil)
		analysis, err := a.Analyze(context.Background(), "learner-1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, analysis.ProgressToNextLevel, 0.0)
		assert.LessOrEqual(t, analysis.ProgressToNextLevel, 100.0)
	}
}

func TestProgressToNext(t *testing.T) {
	full := map[string]float64{}
	for _, topic := range Requirements[itemgen.LevelA1].RequiredTopics {
		full[topic] = 100
	}
	skills := map[Skill]float64{
		SkillGrammar:       100,
		SkillVocabulary:    100,
		SkillConjugation:   100,
		SkillComprehension: 100,
	}

	assert.Equal(t, 100.0, progressToNext(itemgen.LevelA1, full, skills),
		"every criterion met caps at exactly 100")

	partial := map[string]float64{}
	for k, v := range full {
		partial[k] = v
	}
	delete(partial, "greetings")
	assert.Less(t, progressToNext(itemgen.LevelA1, partial, skills), 100.0,
		"a missing required topic keeps progress below 100")

	assert.Zero(t, progressToNext("Z9", full, skills), "unknown level has no criteria")
}

func TestExercisesNeeded(t *testing.T) {
	allCovered := map[string]float64{}
	for _, topic := range Requirements[itemgen.LevelA1].RequiredTopics {
		allCovered[topic] = 80
	}

	assert.Equal(t, 10, exercisesNeeded(itemgen.LevelA1, nil, allCovered),
		"baseline is the level's per-topic target")

	// 10 + 5*3 weaknesses = 25.
	weak := []string{"greetings", "numbers", "articles"}
	assert.Equal(t, 25, exercisesNeeded(itemgen.LevelA1, weak, allCovered))

	// Nothing covered at all: 10 + 5*10 = 60, clamped to 50.
	manyWeak := make([]string, 10)
	assert.Equal(t, 50, exercisesNeeded(itemgen.LevelA1, manyWeak, map[string]float64{}))

	assert.Equal(t, 10, exercisesNeeded("Z9", nil, nil))
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 100.0, confidence(20, 100), "20+ steady records max out")
	assert.Equal(t, 50.0, confidence(10, 50))
	assert.Equal(t, 0.0, confidence(0, 0))
	assert.LessOrEqual(t, confidence(1000, 100), 100.0, "volume saturates")
}

func TestDifficultyProgression(t *testing.T) {
	easy := func(topic string) store.PerformanceData {
		return rec(topic, itemgen.TypeFillBlank, itemgen.DifficultyEasy, 80)
	}
	hard := func(topic string) store.PerformanceData {
		return rec(topic, itemgen.TypeFillBlank, itemgen.DifficultyHard, 80)
	}

	// Newest first: hard work recently, easy work before.
	climbing := []store.PerformanceData{hard("a"), hard("b"), easy("c"), easy("d")}
	assert.True(t, difficultyProgression(climbing))

	sliding := []store.PerformanceData{easy("a"), easy("b"), hard("c"), hard("d")}
	assert.False(t, difficultyProgression(sliding))

	assert.False(t, difficultyProgression(climbing[:3]), "too little history to call a trend")
}

func TestDifficultyWeight(t *testing.T) {
	assert.Equal(t, 1.0, DifficultyWeight(itemgen.DifficultyEasy))
	assert.Equal(t, 1.5, DifficultyWeight(itemgen.DifficultyMedium))
	assert.Equal(t, 2.0, DifficultyWeight(itemgen.DifficultyHard))
	assert.Equal(t, 1.0, DifficultyWeight("unknown"), "unknown tiers count as easy")
}
