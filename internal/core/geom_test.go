package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 3, false},
		{2, 5, false},
		{1, 3, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v, expected {1 1 8 4}", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if !tiny.Empty() {
		t.Errorf("over-inset rect should be empty, got %+v", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %v, expected 0", got)
	}
}

func TestStepF(t *testing.T) {
	tests := []struct {
		name                        string
		val, delta, step, lo, hi    float64
		expected                    float64
	}{
		{"plain step", 0.5, 0.01, 0.01, 0, 1, 0.51},
		{"clamped high", 0.995, 0.01, 0.01, 0, 1, 1},
		{"clamped low", 0.0, -0.01, 0.01, 0, 1, 0},
		{"snaps off-grid value", 0.123, 0.1, 0.1, 0, 10, 0.2},
		{"no grid", 0.123, 0.1, 0, 0, 10, 0.223},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := StepF(tc.val, tc.delta, tc.step, tc.lo, tc.hi)
			if d := got - tc.expected; d > 1e-9 || d < -1e-9 {
				t.Errorf("StepF() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestStepFNoDrift(t *testing.T) {
	v := 0.0
	for i := 0; i < 100; i++ {
		v = StepF(v, 0.01, 0.01, 0, 1)
	}
	if v != 1 {
		t.Errorf("100 steps of 0.01 = %v, expected exactly 1", v)
	}
}

func TestScaleToRow(t *testing.T) {
	tests := []struct {
		v        float64
		expected int
	}{
		{1, 2},
		{0, 6},
		{-1, 10},
		{5, 2},   // clamped
		{-5, 10}, // clamped
	}
	for _, tc := range tests {
		if got := ScaleToRow(tc.v, 1, 2, 9); got != tc.expected {
			t.Errorf("ScaleToRow(%v) = %d, expected %d", tc.v, got, tc.expected)
		}
	}

	if got := ScaleToRow(0.7, 0, 0, 5); got != 2 {
		t.Errorf("zero extent should draw on the middle row, got %d", got)
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 {
		t.Error("Abs failed")
	}
	if Min(2, 5) != 2 || Max(2, 5) != 5 {
		t.Error("Min/Max failed")
	}
}
