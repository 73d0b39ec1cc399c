package proficiency

import "testing"

func TestMean(t *testing.T) {
	tests := []struct {
		values []float64
		want   float64
	}{
		{nil, 0},
		{[]float64{5}, 5},
		{[]float64{2, 4, 6}, 4},
		{[]float64{80, 90}, 85},
	}
	for _, tt := range tests {
		if got := mean(tt.values); got != tt.want {
			t.Errorf("mean(%v) = %v, want %v", tt.values, got, tt.want)
		}
	}
}

func TestVariance(t *testing.T) {
	if got := variance(nil); got != 0 {
		t.Errorf("variance(nil) = %v", got)
	}
	if got := variance([]float64{70, 70, 70}); got != 0 {
		t.Errorf("identical scores should have zero variance, got %v", got)
	}
	// Population variance of {60, 80} is 100.
	if got := variance([]float64{60, 80}); got != 100 {
		t.Errorf("variance({60,80}) = %v, want 100", got)
	}
}

func TestConsistency(t *testing.T) {
	if got := consistency([]float64{70, 70, 70}); got != 100 {
		t.Errorf("steady scores should score 100, got %v", got)
	}
	if got := consistency([]float64{60, 80}); got != 0 {
		t.Errorf("variance 100 should floor to 0, got %v", got)
	}
	if got := consistency([]float64{0, 100}); got != 0 {
		t.Errorf("wild scores must floor at 0, got %v", got)
	}

	// More spread never scores higher.
	tight := consistency([]float64{72, 74, 76})
	loose := consistency([]float64{60, 75, 90})
	if loose > tight {
		t.Errorf("looser scores scored higher: %v > %v", loose, tight)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{50, 0, 100, 50},
		{-5, 0, 100, 0},
		{120, 0, 100, 100},
		{0, 0, 100, 0},
		{100, 0, 100, 100},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
