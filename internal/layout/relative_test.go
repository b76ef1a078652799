package layout

import (
	"math"
	"testing"
)

func TestIsRelative(t *testing.T) {
	type tc struct {
		mode     Mode
		width    Value
		height   Value
		expected bool
	}

	tests := map[string]tc{
		"horizontal percent width":     {mode: ModeHorizontal, width: Percent(50), height: Fixed(10), expected: true},
		"horizontal percent height":    {mode: ModeHorizontal, width: Fixed(10), height: Percent(50), expected: false},
		"vertical percent height":      {mode: ModeVertical, width: Fixed(10), height: Percent(50), expected: true},
		"vertical percent width":       {mode: ModeVertical, width: Percent(50), height: Auto(), expected: false},
		"grid percent width":           {mode: ModeGrid, width: Percent(25), height: Auto(), expected: true},
		"absolute treats all as fixed": {mode: ModeAbsolute, width: Percent(50), height: Percent(50), expected: false},
		"none treats all as fixed":     {mode: ModeNone, width: Percent(50), height: Percent(50), expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IsRelative(tt.mode, tt.width, tt.height); got != tt.expected {
				t.Errorf("IsRelative(%v) = %v, want %v", tt.mode, got, tt.expected)
			}
		})
	}
}

func TestSortFixedFirst_IsStableAndNonMutating(t *testing.T) {
	in := []string{"r1", "f1", "r2", "f2", "f3"}
	isRel := func(s string) bool { return s[0] == 'r' }

	got := SortFixedFirst(in, isRel)

	want := []string{"f1", "f2", "f3", "r1", "r2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortFixedFirst() = %v, want %v", got, want)
		}
	}
	if in[0] != "r1" || in[1] != "f1" {
		t.Errorf("input was reordered: %v", in)
	}
}

func TestRelativeFraction(t *testing.T) {
	type tc struct {
		percent      float64
		sum          float64
		distributing bool
		expected     float64
	}

	tests := map[string]tc{
		"under 100 keeps plain fraction":     {percent: 50, sum: 50, distributing: true, expected: 0.5},
		"exactly 100":                        {percent: 30, sum: 100, distributing: true, expected: 0.3},
		"overcommitted siblings are scaled":  {percent: 100, sum: 200, distributing: true, expected: 0.5},
		"non-distributing axis ignores sum":  {percent: 100, sum: 200, distributing: false, expected: 1},
		"zero percent":                       {percent: 0, sum: 0, distributing: true, expected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := RelativeFraction(tt.percent, tt.sum, tt.distributing)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("RelativeFraction() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRelativeSize(t *testing.T) {
	type tc struct {
		available float64
		fraction  float64
		margins   float64
		expected  float64
	}

	tests := map[string]tc{
		"half":              {available: 200, fraction: 0.5, expected: 100},
		"margins removed":   {available: 200, fraction: 0.5, margins: 10, expected: 90},
		"rounded":           {available: 100, fraction: 1.0 / 3, expected: 33},
		"never negative":    {available: 10, fraction: 0.1, margins: 20, expected: 0},
		"unbounded is zero": {available: math.Inf(1), fraction: 0.5, expected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := RelativeSize(tt.available, tt.fraction, tt.margins); got != tt.expected {
				t.Errorf("RelativeSize() = %v, want %v", got, tt.expected)
			}
		})
	}
}
