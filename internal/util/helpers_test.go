package util

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 5) != 0 || Clamp(9, 0, 5) != 5 || Clamp(3, 0, 5) != 3 {
		t.Fatalf("Clamp returned an unexpected value")
	}
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-2, 0},
		{0, 0},
		{4.5, 4.5},
		{12, 10},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := ClampFloat(tt.in, 0, 10); got != tt.want {
			t.Fatalf("ClampFloat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	if Round(1.49) != 1 || Round(1.5) != 2 || Round(-1.5) != -2 {
		t.Fatalf("Round returned an unexpected value")
	}
}
