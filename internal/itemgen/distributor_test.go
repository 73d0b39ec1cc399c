package itemgen

import (
	"errors"
	"fmt"
	"testing"
)

func poolOf(sizes map[Difficulty]int) []Item {
	var pool []Item
	for _, tier := range Difficulties {
		for i := 0; i < sizes[tier]; i++ {
			pool = append(pool, Item{
				Prompt:      fmt.Sprintf("%s question %d", tier, i),
				Answer:      "x",
				Explanation: "because",
				Difficulty:  tier,
			})
		}
	}
	return pool
}

func TestDistribute_EvenSplit(t *testing.T) {
	pool := poolOf(map[Difficulty]int{DifficultyEasy: 10})
	out, err := Distribute(pool, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 deliverables, got %d", len(out))
	}
	for i, d := range out {
		if len(d.Items) != 2 {
			t.Errorf("deliverable %d: expected 2 items, got %d", i, len(d.Items))
		}
		if d.ID == "" {
			t.Errorf("deliverable %d: missing ID", i)
		}
	}
}

func TestDistribute_RemainderSpreadsForward(t *testing.T) {
	pool := poolOf(map[Difficulty]int{DifficultyEasy: 11})
	out, err := Distribute(pool, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 11 = 4 + 4 + 3: the first 11%3=2 groups carry the extra item.
	wantSizes := []int{4, 4, 3}
	for i, d := range out {
		if len(d.Items) != wantSizes[i] {
			t.Errorf("deliverable %d: expected %d items, got %d", i, wantSizes[i], len(d.Items))
		}
	}
}

// Nothing dropped, no group empty, regardless of pool/target combination.
func TestDistribute_ConservesItems(t *testing.T) {
	for poolSize := 1; poolSize <= 23; poolSize++ {
		pool := poolOf(map[Difficulty]int{DifficultyMedium: poolSize})
		for target := 1; target <= poolSize; target++ {
			out, err := Distribute(pool, target)
			if err != nil {
				t.Fatalf("pool %d target %d: %v", poolSize, target, err)
			}
			total := 0
			for _, d := range out {
				if len(d.Items) == 0 {
					t.Fatalf("pool %d target %d: empty deliverable", poolSize, target)
				}
				total += len(d.Items)
			}
			if total != poolSize {
				t.Fatalf("pool %d target %d: %d items distributed", poolSize, target, total)
			}
		}
	}
}

func TestDistribute_InsufficientItems(t *testing.T) {
	pool := poolOf(map[Difficulty]int{DifficultyEasy: 3})

	for _, target := range []int{4, 0, -1} {
		_, err := Distribute(pool, target)
		var insufficient *ErrInsufficientItems
		if !errors.As(err, &insufficient) {
			t.Errorf("target %d: expected ErrInsufficientItems, got %v", target, err)
		}
	}

	_, err := Distribute(nil, 1)
	var insufficient *ErrInsufficientItems
	if !errors.As(err, &insufficient) {
		t.Errorf("empty pool: expected ErrInsufficientItems, got %v", err)
	}
}

func TestDominantDifficulty(t *testing.T) {
	tests := []struct {
		name  string
		sizes map[Difficulty]int
		want  Difficulty
	}{
		{"clear majority", map[Difficulty]int{DifficultyEasy: 1, DifficultyHard: 3}, DifficultyHard},
		{"all one tier", map[Difficulty]int{DifficultyMedium: 4}, DifficultyMedium},
		{"two-way tie breaks to earlier tier", map[Difficulty]int{DifficultyEasy: 2, DifficultyHard: 2}, DifficultyEasy},
		{"medium-hard tie breaks to medium", map[Difficulty]int{DifficultyMedium: 2, DifficultyHard: 2}, DifficultyMedium},
		{"three-way tie breaks to easy", map[Difficulty]int{DifficultyEasy: 1, DifficultyMedium: 1, DifficultyHard: 1}, DifficultyEasy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := poolOf(tt.sizes)
			out, err := Distribute(pool, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out[0].Difficulty != tt.want {
				t.Errorf("got %q, want %q", out[0].Difficulty, tt.want)
			}
		})
	}
}

func TestDeliverable_QuestionTexts(t *testing.T) {
	d := Deliverable{Items: []Item{
		{Prompt: "first"},
		{Prompt: "second"},
	}}
	texts := d.QuestionTexts()
	if len(texts) != 2 || texts[0] != "first" || texts[1] != "second" {
		t.Errorf("unexpected texts: %v", texts)
	}
}
