package itemgen

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDedup_PriorQuestions(t *testing.T) {
	repo := &fakeDeliverableRepo{texts: []string{"q1", "q2"}}
	d := NewDedup(repo)

	texts, err := d.PriorQuestions(context.Background(), "present-tense", TypeFillBlank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(texts) != 2 {
		t.Errorf("expected 2 texts, got %d", len(texts))
	}
}

func TestDedup_StoreError(t *testing.T) {
	d := NewDedup(&fakeDeliverableRepo{err: errors.New("db locked")})
	if _, err := d.PriorQuestions(context.Background(), "present-tense", TypeFillBlank); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestFormatAvoid(t *testing.T) {
	if got := formatAvoid(nil, 10); got != "None" {
		t.Errorf("empty list should render None, got %q", got)
	}

	got := formatAvoid([]string{"first", "second"}, 10)
	if got != "1. first\n2. second" {
		t.Errorf("unexpected rendering: %q", got)
	}
}

func TestFormatAvoid_KeepsMostRecent(t *testing.T) {
	texts := []string{"oldest", "middle", "newest"}
	got := formatAvoid(texts, 2)

	if strings.Contains(got, "oldest") {
		t.Errorf("oldest entry should be dropped: %q", got)
	}
	if !strings.Contains(got, "middle") || !strings.Contains(got, "newest") {
		t.Errorf("most recent entries should survive: %q", got)
	}
}

func TestFormatAvoid_ZeroMaxKeepsAll(t *testing.T) {
	got := formatAvoid([]string{"a", "b", "c"}, 0)
	for _, want := range []string{"a", "b", "c"} {
		if !strings.Contains(got, want) {
			t.Errorf("entry %q missing from %q", want, got)
		}
	}
}
