package itemgen

import "github.com/google/uuid"

// Deliverable is a packaged group of items assigned a dominant difficulty
// label, ready for persistence as one exercise.
type Deliverable struct {
	ID         string
	Difficulty Difficulty
	Items      []Item
}

// Distribute packs the pool into exactly targetCount deliverables. Group
// sizes are len(pool)/targetCount, with the first len(pool)%targetCount
// groups receiving one extra item, so nothing is dropped and no group is
// empty. Fails with *ErrInsufficientItems when targetCount exceeds the
// pool size.
func Distribute(pool []Item, targetCount int) ([]Deliverable, error) {
	if targetCount <= 0 || targetCount > len(pool) {
		return nil, &ErrInsufficientItems{Have: len(pool), Want: targetCount}
	}

	base := len(pool) / targetCount
	extra := len(pool) % targetCount

	out := make([]Deliverable, 0, targetCount)
	offset := 0
	for i := 0; i < targetCount; i++ {
		size := base
		if i < extra {
			size++
		}
		group := pool[offset : offset+size]
		offset += size

		out = append(out, Deliverable{
			ID:         uuid.NewString(),
			Difficulty: dominantDifficulty(group),
			Items:      group,
		})
	}

	return out, nil
}

// dominantDifficulty returns the tier with the most items in the group.
// Ties break in favor of the earliest tier in canonical order, which is
// deterministic by construction.
func dominantDifficulty(group []Item) Difficulty {
	counts := make(map[Difficulty]int, len(Difficulties))
	for _, item := range group {
		counts[item.Difficulty]++
	}

	best := Difficulties[0]
	bestCount := -1
	for _, tier := range Difficulties {
		if counts[tier] > bestCount {
			best = tier
			bestCount = counts[tier]
		}
	}
	return best
}

// QuestionTexts flattens the prompts of a deliverable's items, in order.
func (d *Deliverable) QuestionTexts() []string {
	texts := make([]string, len(d.Items))
	for i, item := range d.Items {
		texts[i] = item.Prompt
	}
	return texts
}
