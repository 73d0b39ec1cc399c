package proficiency

import (
	"context"
	"fmt"
	"sort"

	"github.com/verbly-app/verbly/internal/itemgen"
	"github.com/verbly-app/verbly/internal/store"
)

// maxRecords bounds how much history one analysis considers.
const maxRecords = 100

// recentWindow is how many of the newest records gate level progression.
const recentWindow = 20

// snapshotConfidence is the fixed confidence of the degraded path that
// derives an analysis from the aggregate snapshot instead of individual
// records.
const snapshotConfidence = 30.0

// Analyzer computes a learner's proficiency picture from historical
// performance records. All scoring is rule-based; no model fitting.
type Analyzer struct {
	performance store.PerformanceRepo
	snapshots   store.SnapshotRepo
}

// NewAnalyzer creates an Analyzer over the performance datastore.
func NewAnalyzer(performance store.PerformanceRepo, snapshots store.SnapshotRepo) *Analyzer {
	return &Analyzer{performance: performance, snapshots: snapshots}
}

// Analyze computes a fresh analysis for the learner. With no records it
// falls back to the level-progress snapshot; with nothing at all it
// returns a zero-confidence A1 analysis signaling "no data".
func (a *Analyzer) Analyze(ctx context.Context, learnerID string) (*Analysis, error) {
	records, err := a.performance.RecentByLearner(ctx, learnerID, maxRecords)
	if err != nil {
		return nil, fmt.Errorf("load performance records: %w", err)
	}

	if len(records) == 0 {
		return a.analyzeFromSnapshot(ctx, learnerID)
	}

	return a.analyzeFromRecords(learnerID, records), nil
}

func (a *Analyzer) analyzeFromRecords(learnerID string, records []store.PerformanceData) *Analysis {
	topicScores := groupScores(records, func(r store.PerformanceData) string { return r.Topic })
	skillScores := make(map[Skill]float64)
	for group, score := range groupScores(records, func(r store.PerformanceData) string {
		return string(SkillFor(itemgen.ExerciseType(r.ExerciseType)))
	}) {
		skillScores[Skill(group)] = score
	}

	rawScores := make([]float64, len(records))
	for i, r := range records {
		rawScores[i] = r.Score
	}

	level := currentLevel(records, topicScores)
	strengths, weaknesses := classifyTopics(topicScores)
	progress := progressToNext(level, topicScores, skillScores)

	analysis := &Analysis{
		LearnerID:           learnerID,
		CurrentLevel:        level,
		ConfidenceScore:     confidence(len(records), consistency(rawScores)),
		Strengths:           strengths,
		Weaknesses:          weaknesses,
		RecommendedLevel:    level,
		ProgressToNextLevel: progress,
		ExercisesNeeded:     exercisesNeeded(level, weaknesses, topicScores),
		Details: Details{
			TopicScores:           topicScores,
			SkillScores:           skillScores,
			DifficultyProgression: difficultyProgression(records),
			ConsistencyScore:      consistency(rawScores),
		},
	}

	if next, ok := NextLevel(level); ok && progress > recommendThreshold {
		analysis.RecommendedLevel = next
	}

	return analysis
}

// analyzeFromSnapshot is the degraded path: no individual records exist,
// so the aggregate snapshot stands in with reduced confidence.
func (a *Analyzer) analyzeFromSnapshot(ctx context.Context, learnerID string) (*Analysis, error) {
	snap, err := a.snapshots.Latest(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load level progress snapshot: %w", err)
	}

	if snap == nil {
		return noDataAnalysis(learnerID), nil
	}

	level := itemgen.Level(snap.Level)
	if !itemgen.ValidLevel(level) {
		level = itemgen.LevelA1
	}

	topicScores := make(map[string]float64, len(snap.TopicScores))
	for topic, score := range snap.TopicScores {
		topicScores[topic] = score
	}
	strengths, weaknesses := classifyTopics(topicScores)
	progress := progressToNext(level, topicScores, nil)

	analysis := &Analysis{
		LearnerID:           learnerID,
		CurrentLevel:        level,
		ConfidenceScore:     snapshotConfidence,
		Strengths:           strengths,
		Weaknesses:          weaknesses,
		RecommendedLevel:    level,
		ProgressToNextLevel: progress,
		ExercisesNeeded:     exercisesNeeded(level, weaknesses, topicScores),
		Details: Details{
			TopicScores: topicScores,
			SkillScores: map[Skill]float64{},
		},
	}

	if next, ok := NextLevel(level); ok && progress > recommendThreshold {
		analysis.RecommendedLevel = next
	}

	return analysis, nil
}

// noDataAnalysis signals "no data": A1, zero confidence, zero progress.
func noDataAnalysis(learnerID string) *Analysis {
	return &Analysis{
		LearnerID:        learnerID,
		CurrentLevel:     itemgen.LevelA1,
		RecommendedLevel: itemgen.LevelA1,
		ExercisesNeeded:  minExercisesNeeded,
		Details: Details{
			TopicScores: map[string]float64{},
			SkillScores: map[Skill]float64{},
		},
	}
}

// groupScores computes the difficulty-weighted average score per group
// key. Dividing by total weight keeps results in the 0-100 score range
// while letting harder exercises count for more.
func groupScores(records []store.PerformanceData, key func(store.PerformanceData) string) map[string]float64 {
	sums := make(map[string]float64)
	weights := make(map[string]float64)
	for _, r := range records {
		k := key(r)
		w := DifficultyWeight(itemgen.Difficulty(r.Difficulty))
		sums[k] += r.Score * w
		weights[k] += w
	}

	out := make(map[string]float64, len(sums))
	for k, sum := range sums {
		out[k] = sum / weights[k]
	}
	return out
}

// currentLevel walks the level table in ascending order, advancing one
// step at a time while the recent average meets the level's minimum
// score and every required topic is covered. Progression stops at the
// first unmet level; it never jumps ahead.
func currentLevel(records []store.PerformanceData, topicScores map[string]float64) itemgen.Level {
	recent := records
	if len(recent) > recentWindow {
		recent = recent[:recentWindow] // records are newest first
	}
	recentScores := make([]float64, len(recent))
	for i, r := range recent {
		recentScores[i] = r.Score
	}
	recentAvg := mean(recentScores)

	level := itemgen.LevelA1
	for {
		req, ok := Requirements[level]
		if !ok {
			break
		}
		if recentAvg < req.MinScore || !topicsCovered(req.RequiredTopics, topicScores, CoverageThreshold(level)) {
			break
		}
		next, ok := NextLevel(level)
		if !ok {
			break
		}
		level = next
	}
	return level
}

func topicsCovered(required []string, topicScores map[string]float64, threshold float64) bool {
	for _, topic := range required {
		if topicScores[topic] < threshold {
			return false
		}
	}
	return true
}

// classifyTopics splits topics into strengths (>= 85, strongest first)
// and weaknesses (< 65, weakest first). Topics in between are neutral.
func classifyTopics(topicScores map[string]float64) (strengths, weaknesses []string) {
	for topic, score := range topicScores {
		switch {
		case score >= strengthThreshold:
			strengths = append(strengths, topic)
		case score < weaknessThreshold:
			weaknesses = append(weaknesses, topic)
		}
	}

	sort.Slice(strengths, func(i, j int) bool {
		if topicScores[strengths[i]] != topicScores[strengths[j]] {
			return topicScores[strengths[i]] > topicScores[strengths[j]]
		}
		return strengths[i] < strengths[j]
	})
	sort.Slice(weaknesses, func(i, j int) bool {
		if topicScores[weaknesses[i]] != topicScores[weaknesses[j]] {
			return topicScores[weaknesses[i]] < topicScores[weaknesses[j]]
		}
		return weaknesses[i] < weaknesses[j]
	})
	return strengths, weaknesses
}

// progressToNext averages ratio-to-target across every graduation
// criterion of the current level: each required topic against the
// coverage threshold and each skill against its threshold. Equals 100
// only when every ratio is at or above target.
func progressToNext(level itemgen.Level, topicScores map[string]float64, skillScores map[Skill]float64) float64 {
	req, ok := Requirements[level]
	if !ok {
		return 0
	}

	var ratios []float64
	coverage := CoverageThreshold(level)
	for _, topic := range req.RequiredTopics {
		ratios = append(ratios, clamp(topicScores[topic]/coverage*100, 0, 100))
	}
	for skill, threshold := range req.SkillThresholds {
		if threshold <= 0 {
			continue
		}
		ratios = append(ratios, clamp(skillScores[skill]/threshold*100, 0, 100))
	}

	return clamp(mean(ratios), 0, 100)
}

const (
	minExercisesNeeded = 10
	maxExercisesNeeded = 50
)

// exercisesNeeded estimates remaining practice volume: the level's
// per-topic target plus 5 per weakness plus 10 per required topic with
// no coverage at all, clamped to [10, 50].
func exercisesNeeded(level itemgen.Level, weaknesses []string, topicScores map[string]float64) int {
	req, ok := Requirements[level]
	if !ok {
		return minExercisesNeeded
	}

	needed := req.ExercisesPerTopic + 5*len(weaknesses)
	for _, topic := range req.RequiredTopics {
		if _, covered := topicScores[topic]; !covered {
			needed += 10
		}
	}

	if needed < minExercisesNeeded {
		return minExercisesNeeded
	}
	if needed > maxExercisesNeeded {
		return maxExercisesNeeded
	}
	return needed
}

// confidence blends evidence volume with score stability.
func confidence(recordCount int, consistencyScore float64) float64 {
	volume := clamp(float64(recordCount)*5, 0, 100)
	return clamp(0.6*volume+0.4*consistencyScore, 0, 100)
}

// difficultyProgression reports whether the newer half of the history
// carries more difficulty weight on average than the older half.
func difficultyProgression(records []store.PerformanceData) bool {
	if len(records) < 4 {
		return false
	}

	// Records are newest first.
	half := len(records) / 2
	newer, older := records[:half], records[half:]

	avgWeight := func(rs []store.PerformanceData) float64 {
		sum := 0.0
		for _, r := range rs {
			sum += DifficultyWeight(itemgen.Difficulty(r.Difficulty))
		}
		return sum / float64(len(rs))
	}

	return avgWeight(newer) > avgWeight(older)
}
