package layout

import (
	"math"
	"testing"
)

func item(w, h float64) Item {
	return Item{Size: Size{Width: w, Height: h}}
}

func TestArrange_Vertical(t *testing.T) {
	a := item(40, 10)
	b := item(20, 30)
	b.Margin = EdgeTRBL(5, 0, 5, 0)
	b.Align = AlignRight
	c := item(10, 10)
	c.Align = AlignCenter
	c.Overflow = Size{Height: 4}

	res := Arrange(Params{
		Mode:      ModeVertical,
		Available: Size{Width: 100, Height: 200},
		FitWidth:  true,
		FitHeight: true,
	}, []Item{a, b, c})

	want := []Point{{X: 0, Y: 0}, {X: 20, Y: 15}, {X: 15, Y: 50}}
	for i := range want {
		if res.Positions[i] != want[i] {
			t.Errorf("Positions[%d] = %+v, want %+v", i, res.Positions[i], want[i])
		}
	}
	if res.Box != (Size{Width: 40, Height: 64}) {
		t.Errorf("Box = %+v, want {40 64}", res.Box)
	}
	if res.Bounds.Bottom() != 64 {
		t.Errorf("Bounds.Bottom() = %v, want 64", res.Bounds.Bottom())
	}
}

func TestArrange_Horizontal(t *testing.T) {
	a := item(60, 20)
	a.Margin = EdgeSymmetric(0, 5)
	b := item(90, 40)
	c := item(150, 10)
	c.Valign = ValignBottom

	res := Arrange(Params{
		Mode:      ModeHorizontal,
		Available: Size{Width: 320, Height: 40},
		FitWidth:  true,
	}, []Item{a, b, c})

	want := []Point{{X: 5, Y: 0}, {X: 70, Y: 0}, {X: 160, Y: 30}}
	for i := range want {
		if res.Positions[i] != want[i] {
			t.Errorf("Positions[%d] = %+v, want %+v", i, res.Positions[i], want[i])
		}
	}
	if res.Box.Width != 310 {
		t.Errorf("Box.Width = %v, want 310", res.Box.Width)
	}
	if res.Box.Height != 40 {
		t.Errorf("Box.Height = %v, want 40 (fixed axis fills available)", res.Box.Height)
	}
}

func TestArrange_AbsoluteAndNone(t *testing.T) {
	free := item(10, 10)
	free.Position = Point{X: 7, Y: 9}
	centered := item(20, 20)
	centered.Align = AlignCenter
	centered.Valign = ValignBottom
	centered.Position = Point{X: 1, Y: 1}

	type tc struct {
		mode Mode
		want []Point
	}

	tests := map[string]tc{
		"absolute honours align": {
			mode: ModeAbsolute,
			want: []Point{{X: 7, Y: 9}, {X: 40, Y: 80}},
		},
		"none skips align": {
			mode: ModeNone,
			want: []Point{{X: 7, Y: 9}, {X: 1, Y: 1}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res := Arrange(Params{Mode: tt.mode, Available: Size{Width: 100, Height: 100}}, []Item{free, centered})
			for i := range tt.want {
				if res.Positions[i] != tt.want[i] {
					t.Errorf("Positions[%d] = %+v, want %+v", i, res.Positions[i], tt.want[i])
				}
			}
		})
	}
}

func TestArrange_GridPlacesRowsAndColumns(t *testing.T) {
	items := make([]Item, 5)
	for i := range items {
		items[i] = item(50, 20)
	}

	res := Arrange(Params{
		Mode:      ModeGrid,
		Available: Size{Width: 120, Height: math.Inf(1)},
		FitWidth:  true,
		FitHeight: true,
	}, items)

	if res.Grid.Columns != 2 {
		t.Fatalf("Grid.Columns = %d, want 2", res.Grid.Columns)
	}
	want := []Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 0, Y: 20}, {X: 50, Y: 20}, {X: 0, Y: 40}}
	for i := range want {
		if res.Positions[i] != want[i] {
			t.Errorf("Positions[%d] = %+v, want %+v", i, res.Positions[i], want[i])
		}
	}
	if res.Box != (Size{Width: 100, Height: 60}) {
		t.Errorf("Box = %+v, want {100 60}", res.Box)
	}
}

func TestArrange_ContentAlign(t *testing.T) {
	a := item(20, 10)
	b := item(20, 10)
	b.Align = AlignNone
	b.Position = Point{X: 3}

	res := Arrange(Params{
		Mode:          ModeVertical,
		Available:     Size{Width: 100, Height: 100},
		ContentAlign:  AlignCenter,
		ContentValign: ValignBottom,
	}, []Item{a, b})

	// extent is 23 wide (b sits at x=3), so the block shifts (100-23)/2.
	if got := res.Positions[0].X; got != 38.5 {
		t.Errorf("aligned child X = %v, want 38.5", got)
	}
	if got := res.Positions[1].X; got != 3 {
		t.Errorf("opted-out child X = %v, want 3 (unshifted)", got)
	}
	if got := res.Positions[0].Y; got != 80 {
		t.Errorf("aligned child Y = %v, want 80", got)
	}
}

func TestArrange_MinInnerAndOverflowClamp(t *testing.T) {
	res := Arrange(Params{
		Mode:      ModeHorizontal,
		Available: Size{Width: 50, Height: 50},
		FitWidth:  true,
		FitHeight: true,
		MinInner:  Size{Height: 30},
	}, []Item{item(40, 10), item(40, 10)})

	if res.Box.Width != 50 {
		t.Errorf("Box.Width = %v, want 50 (clamped to available)", res.Box.Width)
	}
	if res.Box.Height != 30 {
		t.Errorf("Box.Height = %v, want 30 (raised to minimum)", res.Box.Height)
	}
	if res.Bounds.Width != 80 {
		t.Errorf("Bounds.Width = %v, want 80 (content still overflows)", res.Bounds.Width)
	}
}

func TestArrange_Empty(t *testing.T) {
	res := Arrange(Params{Mode: ModeVertical, Available: Size{Width: 10, Height: 10}, FitWidth: true, FitHeight: true}, nil)
	if res.Box != (Size{}) {
		t.Errorf("Box = %+v, want zero", res.Box)
	}
	if len(res.Positions) != 0 {
		t.Errorf("Positions = %v, want empty", res.Positions)
	}
}
