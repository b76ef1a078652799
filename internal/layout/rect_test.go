package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 || r.Y != 10 || r.Width != 20 || r.Height != 15 {
		t.Errorf("NewRect() = %+v, want {5 10 20 15}", r)
	}
	if r.Right() != 25 {
		t.Errorf("Right() = %v, want 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, want 25", r.Bottom())
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		r        Rect
		edges    Edges
		expected Rect
	}

	tests := map[string]tc{
		"uneven edges": {
			r:        NewRect(0, 0, 100, 50),
			edges:    EdgeTRBL(1, 2, 3, 4),
			expected: NewRect(4, 1, 94, 46),
		},
		"padding wider than rect": {
			r:        NewRect(0, 0, 6, 6),
			edges:    EdgeAll(5),
			expected: NewRect(5, 5, -4, -4),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.r.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"disjoint": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 5, 10, 10),
			expected: NewRect(0, 0, 30, 15),
		},
		"nested": {
			a:        NewRect(0, 0, 100, 100),
			b:        NewRect(10, 10, 10, 10),
			expected: NewRect(0, 0, 100, 100),
		},
		"zero-sized rect still extends": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(40, 0, 0, 0),
			expected: NewRect(0, 0, 40, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.expected {
				t.Errorf("Union() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestEdges(t *testing.T) {
	e := EdgeSymmetric(2, 3)
	if e.Horizontal() != 6 || e.Vertical() != 4 {
		t.Errorf("EdgeSymmetric(2, 3) H/V = %v/%v, want 6/4", e.Horizontal(), e.Vertical())
	}
	if !EdgeAll(0).IsZero() {
		t.Error("EdgeAll(0).IsZero() = false, want true")
	}
	if EdgeAll(1).IsZero() {
		t.Error("EdgeAll(1).IsZero() = true, want false")
	}
}

func TestPoint(t *testing.T) {
	p := Point{X: 1, Y: 2}.Add(Point{X: 3, Y: 4})
	if p != (Point{X: 4, Y: 6}) {
		t.Errorf("Add() = %+v, want {4 6}", p)
	}
}
