package itemgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/verbly-app/verbly/internal/llm"
)

func testRequest(etype ExerciseType) Request {
	return Request{
		Topic:        Topic{ID: "present-tense", Name: "Present Tense"},
		Level:        LevelA1,
		ExerciseType: etype,
		Count:        10,
	}
}

// tierItems builds a canned response of n valid translation items.
func tierItems(n int) llm.MockResponse {
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

func TestGenerate_TierCounts(t *testing.T) {
	mock := llm.NewMockProvider(tierItems(4), tierItems(5), tierItems(2))
	orch := New(mock, nil, nil, DefaultConfig())

	res, err := orch.Generate(context.Background(), testRequest(TypeTranslation))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10 items at 35/45/20 → ceil gives 4, 5, 2 across the three tiers.
	if mock.CallCount() != 3 {
		t.Fatalf("expected one call per tier, got %d", mock.CallCount())
	}
	if len(res.Tiers) != 3 {
		t.Fatalf("expected 3 tier results, got %d", len(res.Tiers))
	}

	wantRequested := map[Difficulty]int{DifficultyEasy: 4, DifficultyMedium: 5, DifficultyHard: 2}
	for _, tr := range res.Tiers {
		if tr.Requested != wantRequested[tr.Difficulty] {
			t.Errorf("tier %s: requested %d, want %d", tr.Difficulty, tr.Requested, wantRequested[tr.Difficulty])
		}
		if tr.Err != nil {
			t.Errorf("tier %s: unexpected error %v", tr.Difficulty, tr.Err)
		}
	}
	if len(res.Items) != 11 {
		t.Errorf("expected 11 pooled items, got %d", len(res.Items))
	}
}

func TestGenerate_RequestedTierIsAuthoritative(t *testing.T) {
	// The model tags everything "easy"; the medium and hard tiers must
	// still carry the tier they were requested for.
	mock := llm.NewMockProvider(tierItems(1), tierItems(1), tierItems(1))
	orch := New(mock, nil, nil, DefaultConfig())

	res, err := orch.Generate(context.Background(), testRequest(TypeTranslation))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[Difficulty]int{}
	for _, item := range res.Items {
		got[item.Difficulty]++
	}
	for _, tier := range Difficulties {
		if got[tier] != 1 {
			t.Errorf("tier %s: expected 1 item, got %d", tier, got[tier])
		}
	}
}

func TestGenerate_SingleTierSplit(t *testing.T) {
	mock := llm.NewMockProvider(tierItems(3))
	orch := New(mock, nil, nil, DefaultConfig())

	req := testRequest(TypeTranslation)
	req.Split = Split{DifficultyEasy: 100}

	res, err := orch.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("zero-percent tiers must be skipped: %d calls", mock.CallCount())
	}
	if len(res.Tiers) != 1 || res.Tiers[0].Difficulty != DifficultyEasy {
		t.Errorf("unexpected tier results: %+v", res.Tiers)
	}
}

func TestGenerate_RefusalSkipsTier(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrContentRefusal{}},
		tierItems(2),
		tierItems(1),
	)
	orch := New(mock, nil, nil, DefaultConfig())

	res, err := orch.Generate(context.Background(), testRequest(TypeTranslation))
	if err != nil {
		t.Fatalf("a refused tier must not fail the request: %v", err)
	}
	if len(res.Items) != 3 {
		t.Errorf("expected items from the surviving tiers, got %d", len(res.Items))
	}

	var easyTier *TierResult
	for i := range res.Tiers {
		if res.Tiers[i].Difficulty == DifficultyEasy {
			easyTier = &res.Tiers[i]
		}
	}
	if easyTier == nil || easyTier.Err == nil {
		t.Error("the refused tier should record its error")
	}
}

func TestGenerate_RateLimitAborts(t *testing.T) {
	mock := llm.NewMockProvider(
		tierItems(2),
		llm.MockResponse{Err: &llm.ErrRateLimit{RetryAfter: time.Minute}},
		tierItems(1),
	)
	orch := New(mock, nil, nil, DefaultConfig())

	_, err := orch.Generate(context.Background(), testRequest(TypeTranslation))
	if err == nil {
		t.Fatal("a rate limit surviving the retry layer must abort the request")
	}
	if !llm.IsRateLimited(err) {
		t.Errorf("expected a rate-limit error, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("the hard tier must not be attempted after a rate limit: %d calls", mock.CallCount())
	}
}

func TestGenerate_ContextCancelAborts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: context.Canceled},
	)
	orch := New(mock, nil, nil, DefaultConfig())

	_, err := orch.Generate(context.Background(), testRequest(TypeTranslation))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation to propagate, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("no further tiers after cancellation: %d calls", mock.CallCount())
	}
}

func TestGenerate_InvalidItemsDiscarded(t *testing.T) {
	content := json.RawMessage(`{"items":[
		{"prompt":"Ich ___ Kaffee.","answer":"trinke","explanation":"first person","difficulty":"easy"},
		{"prompt":"No blank marker here.","answer":"trinke","explanation":"broken","difficulty":"easy"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	orch := New(mock, nil, nil, DefaultConfig())

	req := testRequest(TypeFillBlank)
	req.Split = Split{DifficultyEasy: 100}

	res, err := orch.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 1 {
		t.Errorf("expected 1 surviving item, got %d", len(res.Items))
	}
	if res.Tiers[0].Generated != 1 || res.Tiers[0].Discarded != 1 {
		t.Errorf("unexpected tier accounting: %+v", res.Tiers[0])
	}
}

func TestGenerate_ZeroItemsIsTierError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"items":[]}`)})
	orch := New(mock, nil, nil, DefaultConfig())

	req := testRequest(TypeTranslation)
	req.Split = Split{DifficultyEasy: 100}

	res, err := orch.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("an empty tier must not fail the request: %v", err)
	}
	if len(res.Tiers) != 1 || res.Tiers[0].Err == nil {
		t.Errorf("expected the tier to record an error: %+v", res.Tiers)
	}
	var invalid *llm.ErrInvalidResponse
	if !errors.As(res.Tiers[0].Err, &invalid) {
		t.Errorf("expected ErrInvalidResponse, got %v", res.Tiers[0].Err)
	}
}

func TestGenerate_Throttled(t *testing.T) {
	repo := &fakeDeliverableRepo{latest: time.Now().Add(-10 * time.Second)}
	mock := llm.NewMockProvider(tierItems(1))
	orch := New(mock, nil, NewRateWindow(repo), DefaultConfig())

	_, err := orch.Generate(context.Background(), testRequest(TypeTranslation))
	var throttled *ErrGenerationThrottled
	if !errors.As(err, &throttled) {
		t.Fatalf("expected ErrGenerationThrottled, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("no provider call when throttled: %d calls", mock.CallCount())
	}
}

func TestGenerate_PriorQuestionsReachThePrompt(t *testing.T) {
	repo := &fakeDeliverableRepo{texts: []string{"What is the plural of Haus?"}}
	mock := llm.NewMockProvider(tierItems(1))
	orch := New(mock, NewDedup(repo), nil, DefaultConfig())

	req := testRequest(TypeTranslation)
	req.Split = Split{DifficultyEasy: 100}
	req.AvoidTexts = []string{"Conjugate gehen in present tense."}

	if _, err := orch.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "What is the plural of Haus?") {
		t.Errorf("prior question missing from prompt:\n%s", msg)
	}
	if !strings.Contains(msg, "Conjugate gehen in present tense.") {
		t.Errorf("caller-supplied avoid text missing from prompt:\n%s", msg)
	}
}

func TestGenerate_RejectsBadRequests(t *testing.T) {
	orch := New(llm.NewMockProvider(), nil, nil, DefaultConfig())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing topic id", func(r *Request) { r.Topic.ID = "" }},
		{"missing topic name", func(r *Request) { r.Topic.Name = "" }},
		{"unknown exercise type", func(r *Request) { r.ExerciseType = "essay" }},
		{"unknown level", func(r *Request) { r.Level = "Z9" }},
		{"zero count", func(r *Request) { r.Count = 0 }},
		{"negative count", func(r *Request) { r.Count = -5 }},
		{"split under 100", func(r *Request) { r.Split = Split{DifficultyEasy: 50} }},
		{"split over 100", func(r *Request) {
			r.Split = Split{DifficultyEasy: 60, DifficultyMedium: 60}
		}},
		{"negative split value", func(r *Request) {
			r.Split = Split{DifficultyEasy: 150, DifficultyMedium: -50}
		}},
		{"unknown split tier", func(r *Request) { r.Split = Split{"extreme": 100} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest(TypeTranslation)
			tt.mutate(&req)
			_, err := orch.Generate(context.Background(), req)
			var invalid *ErrInvalidRequest
			if !errors.As(err, &invalid) {
				t.Errorf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}
