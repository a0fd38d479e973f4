package core

import "testing"

func TestHealthColor(t *testing.T) {
	tests := []struct {
		health, max float64
		expected    Color
	}{
		{100, 100, ColorBrightGreen},
		{51, 100, ColorBrightGreen},
		{50, 100, ColorBrightYellow},
		{26, 100, ColorBrightYellow},
		{25, 100, ColorBrightRed},
		{0, 100, ColorBrightRed},
		{10, 0, ColorBrightRed},
	}

	for _, tc := range tests {
		if got := HealthColor(tc.health, tc.max); got != tc.expected {
			t.Errorf("HealthColor(%v, %v) = %v, expected %v", tc.health, tc.max, got, tc.expected)
		}
	}
}
