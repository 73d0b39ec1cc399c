package proficiency

import (
	"testing"

	"github.com/verbly-app/verbly/internal/itemgen"
)

func TestSkillFor(t *testing.T) {
	tests := []struct {
		etype itemgen.ExerciseType
		want  Skill
	}{
		{itemgen.TypeMultipleChoice, SkillVocabulary},
		{itemgen.TypeFillBlank, SkillGrammar},
		{itemgen.TypeSentenceStructure, SkillGrammar},
		{itemgen.TypeConjugation, SkillConjugation},
		{itemgen.TypeTranslation, SkillComprehension},
		{"unknown", SkillComprehension},
	}
	for _, tt := range tests {
		if got := SkillFor(tt.etype); got != tt.want {
			t.Errorf("SkillFor(%q) = %q, want %q", tt.etype, got, tt.want)
		}
	}
}

func TestNextLevel(t *testing.T) {
	next, ok := NextLevel(itemgen.LevelA1)
	if !ok || next != itemgen.LevelA2 {
		t.Errorf("NextLevel(A1) = %q, %v", next, ok)
	}
	next, ok = NextLevel(itemgen.LevelC1)
	if !ok || next != itemgen.LevelC2 {
		t.Errorf("NextLevel(C1) = %q, %v", next, ok)
	}
	if _, ok := NextLevel(itemgen.LevelC2); ok {
		t.Error("C2 has no next level")
	}
	if _, ok := NextLevel("Z9"); ok {
		t.Error("unknown levels have no next level")
	}
}

func TestCoverageThreshold(t *testing.T) {
	if got := CoverageThreshold(itemgen.LevelA1); got != 70 {
		t.Errorf("A1 threshold = %v, want 70", got)
	}
	for _, level := range itemgen.Levels[1:] {
		if got := CoverageThreshold(level); got != 75 {
			t.Errorf("%s threshold = %v, want 75", level, got)
		}
	}
}

func TestRequirements_EveryLevelPresent(t *testing.T) {
	for _, level := range itemgen.Levels {
		req, ok := Requirements[level]
		if !ok {
			t.Errorf("level %s missing from the table", level)
			continue
		}
		if req.MinScore <= 0 || len(req.RequiredTopics) == 0 || req.ExercisesPerTopic <= 0 {
			t.Errorf("level %s has incomplete requirements: %+v", level, req)
		}
		for _, skill := range Skills {
			if _, ok := req.SkillThresholds[skill]; !ok {
				t.Errorf("level %s missing threshold for %s", level, skill)
			}
		}
	}
}

func TestRequirements_MonotonicMinScore(t *testing.T) {
	prev := 0.0
	for _, level := range itemgen.Levels {
		min := Requirements[level].MinScore
		if min < prev {
			t.Errorf("min score drops at %s: %v < %v", level, min, prev)
		}
		prev = min
	}
}
