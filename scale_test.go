package prettybytes

import "testing"

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name   string
		num    float64
		places int
		want   float64
	}{
		{"half rounds up", 2.5, 0, 3},
		{"half rounds away from zero", -2.5, 0, -3},
		{"two places", 4.896484375, 2, 4.9},
		{"whole number identity", 5, 0, 5},
		{"no fractional change", 3.05, 2, 3.05},
		{"past float precision", 3.05, 40, 3.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundTo(tt.num, tt.places); got != tt.want {
				t.Errorf("roundTo(%v, %d) = %v, want %v", tt.num, tt.places, got, tt.want)
			}
		})
	}
}

func TestRoundToIdempotent(t *testing.T) {
	r := roundTo(4.896484375, 2)
	if again := roundTo(r, 2); again != r {
		t.Errorf("roundTo(%v, 2) = %v, want %v", r, again, r)
	}
	if more := roundTo(r, 4); more != r {
		t.Errorf("roundTo(%v, 4) = %v, want %v", r, more, r)
	}
}
