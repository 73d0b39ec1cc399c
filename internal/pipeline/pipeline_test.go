package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/verbly-app/verbly/internal/itemgen"
	"github.com/verbly-app/verbly/internal/llm"
	"github.com/verbly-app/verbly/internal/store"
)

// memDeliverables is an in-memory store.DeliverableRepo.
type memDeliverables struct {
	mu       sync.Mutex
	inserted []store.DeliverableData
}

func (m *memDeliverables) Insert(_ context.Context, data store.DeliverableData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserted = append(m.inserted, data)
	return nil
}

func (m *memDeliverables) PriorQuestionTexts(_ context.Context, topic, exerciseType string) ([]string, error) {
	return nil, nil
}

func (m *memDeliverables) Purge(_ context.Context, topic string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.inserted)
	m.inserted = nil
	return n, nil
}

func (m *memDeliverables) LatestCreatedAt(_ context.Context, topic, exerciseType string) (time.Time, error) {
	return time.Time{}, nil
}

func (m *memDeliverables) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inserted)
}

// fastConfig removes the production pacing so tests finish quickly.
func fastConfig() Config {
	return Config{
		ItemsPerDeliverable: 5,
		PacingBase:          time.Millisecond,
		PacingGrowth:        0,
		PacingMax:           time.Millisecond,
	}
}

func itemsJSON(n int) llm.MockResponse {
	var b strings.Builder
	b.WriteString(`{"items":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"prompt":"Translate sentence %d","answer":"answer %d","explanation":"because","difficulty":"easy"}`, i, i)
	}
	b.WriteString(`]}`)
	return llm.MockResponse{Content: json.RawMessage(b.String())}
}

func testTopic() itemgen.Topic {
	return itemgen.Topic{ID: "present-tense", Name: "Present Tense"}
}

// easyOnly keeps each job at a single provider call.
func easyOnly() itemgen.Split {
	return itemgen.Split{itemgen.DifficultyEasy: 100}
}

func newTestPipeline(provider llm.Provider, repo store.DeliverableRepo) *Pipeline {
	orch := itemgen.New(provider, nil, nil, itemgen.DefaultConfig())
	return New(orch, repo, fastConfig())
}

func TestBuildJobs_WeightedCounts(t *testing.T) {
	jobs := buildJobs([]itemgen.Topic{testTopic()}, itemgen.LevelA1, 100, DefaultTypeWeights())

	if len(jobs) != 5 {
		t.Fatalf("expected 5 jobs, got %d", len(jobs))
	}

	want := map[itemgen.ExerciseType]int{
		itemgen.TypeMultipleChoice:    35,
		itemgen.TypeFillBlank:         30,
		itemgen.TypeTranslation:       20,
		itemgen.TypeConjugation:       10,
		itemgen.TypeSentenceStructure: 5,
	}
	for _, job := range jobs {
		if job.RequestedCount != want[job.ExerciseType] {
			t.Errorf("%s: requested %d, want %d", job.ExerciseType, job.RequestedCount, want[job.ExerciseType])
		}
		if job.Status != StatusPending {
			t.Errorf("%s: expected pending, got %s", job.ExerciseType, job.Status)
		}
	}

	// Canonical type order keeps job order stable.
	for i, et := range itemgen.ExerciseTypes {
		if jobs[i].ExerciseType != et {
			t.Errorf("job %d: expected %s, got %s", i, et, jobs[i].ExerciseType)
		}
	}
}

func TestBuildJobs_ZeroCountNeverEnqueued(t *testing.T) {
	weights := TypeWeights{
		itemgen.TypeMultipleChoice: 100,
		itemgen.TypeFillBlank:      0,
	}
	jobs := buildJobs([]itemgen.Topic{testTopic()}, itemgen.LevelA1, 20, weights)
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].ExerciseType != itemgen.TypeMultipleChoice {
		t.Errorf("unexpected job type %s", jobs[0].ExerciseType)
	}
}

func TestRun_AllJobsComplete(t *testing.T) {
	mock := llm.NewMockProvider(itemsJSON(7), itemsJSON(6))
	repo := &memDeliverables{}
	pipe := newTestPipeline(mock, repo)

	summary, err := pipe.Run(context.Background(), SessionRequest{
		Topics:        []itemgen.Topic{testTopic()},
		Level:         itemgen.LevelA1,
		ItemsPerTopic: 10,
		Weights: TypeWeights{
			itemgen.TypeTranslation: 50,
			itemgen.TypeConjugation: 50,
		},
		Split: easyOnly(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(summary.Jobs))
	}
	for _, job := range summary.Jobs {
		if job.Status != StatusCompleted {
			t.Errorf("%s: expected completed, got %s (%s)", job.ExerciseType, job.Status, job.ErrMessage)
		}
	}
	if summary.ItemsGenerated != 13 {
		t.Errorf("expected 13 items, got %d", summary.ItemsGenerated)
	}
	if summary.Stopped {
		t.Error("session should not report stopped")
	}
	if pipe.State() != StateCompleted {
		t.Errorf("expected completed state, got %s", pipe.State())
	}
	if repo.count() != summary.DeliverablesCreated {
		t.Errorf("summary says %d deliverables, store has %d", summary.DeliverablesCreated, repo.count())
	}
	if repo.count() == 0 {
		t.Error("expected persisted deliverables")
	}
}

func TestRun_PersistedDeliverableShape(t *testing.T) {
	mock := llm.NewMockProvider(itemsJSON(12))
	repo := &memDeliverables{}
	pipe := newTestPipeline(mock, repo)

	_, err := pipe.Run(context.Background(), SessionRequest{
		Topics:        []itemgen.Topic{testTopic()},
		Level:         itemgen.LevelB1,
		ItemsPerTopic: 12,
		Weights:       TypeWeights{itemgen.TypeTranslation: 100},
		Split:         easyOnly(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 12 items at 5 per deliverable → 2 deliverables of 6.
	if repo.count() != 2 {
		t.Fatalf("expected 2 deliverables, got %d", repo.count())
	}
	total := 0
	for _, d := range repo.inserted {
		if d.Topic != "present-tense" || d.ExerciseType != "translation" || d.Level != "B1" {
			t.Errorf("unexpected deliverable metadata: %+v", d)
		}
		if d.ItemCount != len(d.QuestionTexts) {
			t.Errorf("item count %d does not match %d question texts", d.ItemCount, len(d.QuestionTexts))
		}
		var items []itemgen.Item
		if err := json.Unmarshal(d.Items, &items); err != nil {
			t.Fatalf("stored items are not valid JSON: %v", err)
		}
		if len(items) != d.ItemCount {
			t.Errorf("stored %d items, declared %d", len(items), d.ItemCount)
		}
		total += d.ItemCount
	}
	if total != 12 {
		t.Errorf("expected all 12 items persisted, got %d", total)
	}
}

func TestRun_JobErrorDoesNotStopSession(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrContentRefusal{}},
		itemsJSON(4),
	)
	repo := &memDeliverables{}
	pipe := newTestPipeline(mock, repo)

	summary, err := pipe.Run(context.Background(), SessionRequest{
		Topics:        []itemgen.Topic{testTopic()},
		Level:         itemgen.LevelA1,
		ItemsPerTopic: 8,
		Weights: TypeWeights{
			itemgen.TypeTranslation: 50,
			itemgen.TypeConjugation: 50,
		},
		Split: easyOnly(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Jobs[0].Status != StatusError {
		t.Errorf("first job should fail: %s", summary.Jobs[0].Status)
	}
	if summary.Jobs[1].Status != StatusCompleted {
		t.Errorf("second job should complete: %s (%s)", summary.Jobs[1].Status, summary.Jobs[1].ErrMessage)
	}
	if summary.Stopped {
		t.Error("a failed job is not a stopped session")
	}
}

func TestRun_RateLimitedJobContinues(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{RetryAfter: time.Minute}},
		itemsJSON(4),
	)
	pipe := newTestPipeline(mock, &memDeliverables{})

	summary, err := pipe.Run(context.Background(), SessionRequest{
		Topics:        []itemgen.Topic{testTopic()},
		Level:         itemgen.LevelA1,
		ItemsPerTopic: 8,
		Weights: TypeWeights{
			itemgen.TypeTranslation: 50,
			itemgen.TypeConjugation: 50,
		},
		Split: easyOnly(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Jobs[0].Status != StatusError {
		t.Errorf("rate-limited job should error: %s", summary.Jobs[0].Status)
	}
	if !strings.Contains(summary.Jobs[0].ErrMessage, "rate limited") {
		t.Errorf("unexpected error message: %q", summary.Jobs[0].ErrMessage)
	}
	if summary.Jobs[1].Status != StatusCompleted {
		t.Errorf("later jobs should still run: %s", summary.Jobs[1].Status)
	}
}

// stopProvider completes its first call and blocks on the second until the
// context is cancelled, so the test can stop the session mid-job.
type stopProvider struct {
	calls   atomic.Int32
	started chan struct{}
}

func (p *stopProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	if p.calls.Add(1) == 1 {
		return &llm.Response{
			Content:    itemsJSON(5).Content,
			Model:      "stop-test",
			StopReason: "end",
		}, nil
	}
	close(p.started)
	<-ctx.Done()
	return nil, ctx.Err()
}

func (p *stopProvider) ModelID() string { return "stop-test" }

func TestRun_StopMidSession(t *testing.T) {
	provider := &stopProvider{started: make(chan struct{})}
	pipe := newTestPipeline(provider, &memDeliverables{})

	type result struct {
		summary *Summary
		err     error
	}
	done := make(chan result, 1)
	go func() {
		summary, err := pipe.Run(context.Background(), SessionRequest{
			Topics:        []itemgen.Topic{testTopic()},
			Level:         itemgen.LevelA1,
			ItemsPerTopic: 10,
			Weights: TypeWeights{
				itemgen.TypeTranslation:       40,
				itemgen.TypeConjugation:       40,
				itemgen.TypeSentenceStructure: 20,
			},
			Split: easyOnly(),
		})
		done <- result{summary, err}
	}()

	// Wait until the second job's provider call is in flight, then stop.
	select {
	case <-provider.started:
	case <-time.After(5 * time.Second):
		t.Fatal("second job never started")
	}
	pipe.Stop()

	var res result
	select {
	case res = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	jobs := res.summary.Jobs
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	if jobs[0].Status != StatusCompleted {
		t.Errorf("job 1: expected completed, got %s", jobs[0].Status)
	}
	if jobs[1].Status != StatusError || jobs[1].ErrMessage != stoppedByUser {
		t.Errorf("job 2: expected %q error, got %s (%q)", stoppedByUser, jobs[1].Status, jobs[1].ErrMessage)
	}
	if jobs[2].Status != StatusPending {
		t.Errorf("job 3: must never be attempted, got %s", jobs[2].Status)
	}
	if !res.summary.Stopped {
		t.Error("summary should report stopped")
	}
	if pipe.State() != StateStopped {
		t.Errorf("expected stopped state, got %s", pipe.State())
	}
}

func TestRun_PauseHoldsNextJob(t *testing.T) {
	mock := llm.NewMockProvider(itemsJSON(3), itemsJSON(3))
	pipe := newTestPipeline(mock, &memDeliverables{})
	pipe.Pause()

	done := make(chan *Summary, 1)
	go func() {
		summary, _ := pipe.Run(context.Background(), SessionRequest{
			Topics:        []itemgen.Topic{testTopic()},
			Level:         itemgen.LevelA1,
			ItemsPerTopic: 6,
			Weights:       TypeWeights{itemgen.TypeTranslation: 100},
			Split:         easyOnly(),
		})
		done <- summary
	}()

	select {
	case <-done:
		t.Fatal("session ran while paused")
	case <-time.After(100 * time.Millisecond):
	}
	if pipe.State() != StatePaused {
		t.Errorf("expected paused state, got %s", pipe.State())
	}

	pipe.Resume()

	select {
	case summary := <-done:
		if summary.Jobs[0].Status != StatusCompleted {
			t.Errorf("job should complete after resume: %s", summary.Jobs[0].Status)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("session did not finish after resume")
	}
}

func TestRun_RejectsBadSessions(t *testing.T) {
	pipe := newTestPipeline(llm.NewMockProvider(), &memDeliverables{})

	tests := []struct {
		name string
		req  SessionRequest
	}{
		{"no topics", SessionRequest{Level: itemgen.LevelA1, ItemsPerTopic: 10}},
		{"topic without id", SessionRequest{
			Topics:        []itemgen.Topic{{Name: "No ID"}},
			Level:         itemgen.LevelA1,
			ItemsPerTopic: 10,
		}},
		{"bad level", SessionRequest{
			Topics:        []itemgen.Topic{testTopic()},
			Level:         "Z9",
			ItemsPerTopic: 10,
		}},
		{"zero items", SessionRequest{
			Topics:        []itemgen.Topic{testTopic()},
			Level:         itemgen.LevelA1,
			ItemsPerTopic: 0,
		}},
		{"weights not 100", SessionRequest{
			Topics:        []itemgen.Topic{testTopic()},
			Level:         itemgen.LevelA1,
			ItemsPerTopic: 10,
			Weights:       TypeWeights{itemgen.TypeFillBlank: 60},
		}},
		{"unknown weight type", SessionRequest{
			Topics:        []itemgen.Topic{testTopic()},
			Level:         itemgen.LevelA1,
			ItemsPerTopic: 10,
			Weights:       TypeWeights{"essay": 100},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pipe.Run(context.Background(), tt.req)
			var invalid *itemgen.ErrInvalidRequest
			if !errors.As(err, &invalid) {
				t.Errorf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}
