package store

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testDeliverable(topic, exerciseType string, texts ...string) DeliverableData {
	return DeliverableData{
		ID:            uuid.NewString(),
		Topic:         topic,
		ExerciseType:  exerciseType,
		Level:         "A1",
		Difficulty:    "easy",
		ItemCount:     len(texts),
		Items:         json.RawMessage(`[]`),
		QuestionTexts: texts,
	}
}

func TestDeliverableInsertAndPriorTexts(t *testing.T) {
	s := openTestStore(t)
	repo := s.DeliverableRepo()
	ctx := context.Background()

	texts, err := repo.PriorQuestionTexts(ctx, "present-tense", "fill_blank")
	if err != nil {
		t.Fatalf("prior texts (empty): %v", err)
	}
	if len(texts) != 0 {
		t.Fatalf("expected no prior texts, got %v", texts)
	}

	if err := repo.Insert(ctx, testDeliverable("present-tense", "fill_blank", "q1", "q2")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(ctx, testDeliverable("present-tense", "fill_blank", "q3")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// Different pair, must not leak into the query below.
	if err := repo.Insert(ctx, testDeliverable("numbers", "fill_blank", "other")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	texts, err = repo.PriorQuestionTexts(ctx, "present-tense", "fill_blank")
	if err != nil {
		t.Fatalf("prior texts: %v", err)
	}
	if len(texts) != 3 {
		t.Fatalf("expected 3 texts, got %v", texts)
	}
	for _, text := range texts {
		if text == "other" {
			t.Error("texts from another topic leaked in")
		}
	}
}

func TestDeliverableRejectsEmpty(t *testing.T) {
	s := openTestStore(t)

	d := testDeliverable("present-tense", "fill_blank")
	err := s.DeliverableRepo().Insert(context.Background(), d)
	if err == nil || !strings.Contains(err.Error(), "empty deliverable") {
		t.Fatalf("expected empty-deliverable rejection, got %v", err)
	}
}

func TestDeliverableLatestCreatedAt(t *testing.T) {
	s := openTestStore(t)
	repo := s.DeliverableRepo()
	ctx := context.Background()

	last, err := repo.LatestCreatedAt(ctx, "articles", "translation")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if !last.IsZero() {
		t.Fatalf("expected zero time for empty pair, got %v", last)
	}

	before := time.Now().Add(-time.Second)
	if err := repo.Insert(ctx, testDeliverable("articles", "translation", "q1")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	last, err = repo.LatestCreatedAt(ctx, "articles", "translation")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if last.Before(before) {
		t.Errorf("created_at %v predates the insert", last)
	}
}

func TestPerformanceRecentByLearner(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_, err := s.Client().PerformanceRecord.Create().
			SetLearnerID("learner-1").
			SetTopic("present-tense").
			SetExerciseType("fill_blank").
			SetDifficulty("easy").
			SetScore(float64(70 + i)).
			SetQuestionsTotal(10).
			SetQuestionsCorrect(7 + i).
			SetCompletedAt(base.Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		if err != nil {
			t.Fatalf("create record %d: %v", i, err)
		}
	}
	// Another learner's record must not appear.
	_, err := s.Client().PerformanceRecord.Create().
		SetLearnerID("learner-2").
		SetTopic("numbers").
		SetExerciseType("multiple_choice").
		SetDifficulty("medium").
		SetScore(99).
		SetQuestionsTotal(5).
		SetQuestionsCorrect(5).
		Save(ctx)
	if err != nil {
		t.Fatalf("create other learner: %v", err)
	}

	records, err := s.PerformanceRepo().RecentByLearner(ctx, "learner-1", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	// Newest first.
	if records[0].Score != 72 || records[2].Score != 70 {
		t.Errorf("records not newest first: %v", records)
	}

	limited, err := s.PerformanceRepo().RecentByLearner(ctx, "learner-1", 2)
	if err != nil {
		t.Fatalf("recent limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit not applied: got %d records", len(limited))
	}
}

func TestSnapshotLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	snap, err := s.SnapshotRepo().Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	_, err = s.Client().LevelProgress.Create().
		SetLearnerID("learner-1").
		SetLevel("B1").
		SetAverageScore(78.5).
		SetExercisesCompleted(42).
		SetTopicScores(map[string]float64{"opinions": 80}).
		Save(ctx)
	if err != nil {
		t.Fatalf("create snapshot: %v", err)
	}

	snap, err = s.SnapshotRepo().Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot")
	}
	if snap.Level != "B1" || snap.ExercisesCompleted != 42 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if snap.TopicScores["opinions"] != 80 {
		t.Errorf("topic scores not round-tripped: %v", snap.TopicScores)
	}
}

func TestDeliverablePurge(t *testing.T) {
	s := openTestStore(t)
	repo := s.DeliverableRepo()
	ctx := context.Background()

	for _, d := range []DeliverableData{
		testDeliverable("present-tense", "fill_blank", "q1"),
		testDeliverable("present-tense", "translation", "q2"),
		testDeliverable("numbers", "fill_blank", "q3"),
	} {
		if err := repo.Insert(ctx, d); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	n, err := repo.Purge(ctx, "present-tense")
	if err != nil {
		t.Fatalf("purge topic: %v", err)
	}
	if n != 2 {
		t.Errorf("purged %d rows, want 2", n)
	}

	// The other topic survives a scoped purge.
	texts, err := repo.PriorQuestionTexts(ctx, "numbers", "fill_blank")
	if err != nil {
		t.Fatalf("prior texts: %v", err)
	}
	if len(texts) != 1 {
		t.Errorf("expected untouched topic to keep 1 text, got %v", texts)
	}

	// Empty topic clears everything left.
	n, err = repo.Purge(ctx, "")
	if err != nil {
		t.Fatalf("purge all: %v", err)
	}
	if n != 1 {
		t.Errorf("purged %d rows, want 1", n)
	}
}

func TestEventAppendGeneration(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendGeneration(ctx, GenerationEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "item-gen",
		Topic:        "present-tense",
		ExerciseType: "fill_blank",
		InputTokens:  120,
		OutputTokens: 600,
		LatencyMs:    850,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	// Failed calls are recorded too, without optional fields.
	err = s.EventRepo().AppendGeneration(ctx, GenerationEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "item-gen",
		Success:      false,
		ErrorMessage: "provider unavailable",
	})
	if err != nil {
		t.Fatalf("append failure event: %v", err)
	}

	n, err := s.Client().GenerationEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 events, got %d", n)
	}
}

func TestEventRecentGenerations(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"item-gen", "item-gen", "analysis"} {
		err := repo.AppendGeneration(ctx, GenerationEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  100 * (i + 1),
			OutputTokens: 10,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.RecentGenerations(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("limit not applied: got %d events", len(events))
	}
	// Newest first: the last append comes back first.
	if events[0].Purpose != "analysis" || events[0].InputTokens != 300 {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp not populated")
	}

	all, err := repo.RecentGenerations(ctx, 0)
	if err != nil {
		t.Fatalf("recent unlimited: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected all 3 events, got %d", len(all))
	}
}

func TestEventUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []GenerationEventData{
		{Provider: "mock", Model: "mock", Purpose: "item-gen", InputTokens: 100, OutputTokens: 200, LatencyMs: 100, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "item-gen", InputTokens: 300, OutputTokens: 400, LatencyMs: 300, Success: false},
		{Provider: "mock", Model: "mock", Purpose: "analysis", InputTokens: 50, OutputTokens: 60, LatencyMs: 500, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendGeneration(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 purposes, got %+v", usage)
	}

	byPurpose := make(map[string]GenerationUsage, len(usage))
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}

	ig := byPurpose["item-gen"]
	if ig.Calls != 2 || ig.InputTokens != 400 || ig.OutputTokens != 600 {
		t.Errorf("item-gen aggregate wrong: %+v", ig)
	}
	if ig.AvgLatencyMs != 200 {
		t.Errorf("item-gen avg latency = %d, want 200", ig.AvgLatencyMs)
	}

	an := byPurpose["analysis"]
	if an.Calls != 1 || an.InputTokens != 50 || an.OutputTokens != 60 {
		t.Errorf("analysis aggregate wrong: %+v", an)
	}
}
