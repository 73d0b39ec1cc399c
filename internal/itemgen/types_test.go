package itemgen

import "testing"

func TestShareCount(t *testing.T) {
	tests := []struct {
		total   int
		percent int
		want    int
	}{
		{10, 35, 4},  // 3.5 rounds up
		{10, 45, 5},  // 4.5 rounds up
		{10, 20, 2},  // exact
		{100, 35, 35},
		{1, 20, 1},   // tiny totals still get an item
		{50, 5, 3},   // 2.5 rounds up
		{10, 0, 0},
		{0, 50, 0},
		{-5, 50, 0},
		{10, -10, 0},
	}

	for _, tt := range tests {
		if got := ShareCount(tt.total, tt.percent); got != tt.want {
			t.Errorf("ShareCount(%d, %d) = %d, want %d", tt.total, tt.percent, got, tt.want)
		}
	}
}

// Ceiling division guarantees the shares of any distribution summing to
// 100 cover the total: sum >= total and sum < total + len(distribution).
func TestShareCount_SumProperty(t *testing.T) {
	splits := []map[string]int{
		{"easy": 35, "medium": 45, "hard": 20},
		{"a": 35, "b": 30, "c": 20, "d": 10, "e": 5},
		{"x": 100},
		{"l": 50, "r": 50},
	}
	totals := []int{1, 2, 7, 10, 33, 50, 100}

	for _, split := range splits {
		for _, total := range totals {
			sum := 0
			for _, pct := range split {
				sum += ShareCount(total, pct)
			}
			if sum < total {
				t.Errorf("split %v of %d: shares sum to %d, below total", split, total, sum)
			}
			if sum >= total+len(split) {
				t.Errorf("split %v of %d: shares sum to %d, too much overshoot", split, total, sum)
			}
		}
	}
}

func TestDefaultSplit_SumsTo100(t *testing.T) {
	sum := 0
	for _, pct := range DefaultSplit() {
		sum += pct
	}
	if sum != 100 {
		t.Errorf("default split sums to %d", sum)
	}
}

func TestValidExerciseType(t *testing.T) {
	for _, et := range ExerciseTypes {
		if !ValidExerciseType(et) {
			t.Errorf("%q should be valid", et)
		}
	}
	if ValidExerciseType("essay") {
		t.Error("unknown type accepted")
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range Levels {
		if !ValidLevel(l) {
			t.Errorf("%q should be valid", l)
		}
	}
	if ValidLevel("D1") {
		t.Error("unknown level accepted")
	}
	if ValidLevel("a1") {
		t.Error("levels are case-sensitive")
	}
}
