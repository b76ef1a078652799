package layout

import "math"

// Params configures Arrange.
type Params struct {
	Mode Mode

	// Available is the inner box (padding already removed) the container can
	// offer its children. An axis may be +Inf when nothing bounds it.
	Available Size

	// FitWidth and FitHeight shrink the committed box on that axis to the
	// content extent instead of filling Available.
	FitWidth, FitHeight bool

	// MinInner is the smallest inner box the container accepts.
	MinInner Size

	// ContentAlign and ContentValign shift all children together once the
	// content extent is known.
	ContentAlign  HAlign
	ContentValign VAlign

	Grid GridOptions
}

// Result is the outcome of Arrange.
type Result struct {
	// Positions holds the border-box top-left corner of each item in inner
	// box coordinates, in input order.
	Positions []Point

	// Bounds is the union of the items' outer boxes after alignment.
	Bounds Rect

	// Box is the committed inner box.
	Box Size

	// Grid is the solved grid for ModeGrid.
	Grid Grid
}

// Arrange positions items inside a container according to p.Mode.
// Items are given in canonical (z) order and positions come back in the same
// order.
func Arrange(p Params, items []Item) Result {
	res := Result{Positions: make([]Point, len(items))}
	if p.Mode == ModeGrid {
		cells := make([]Size, len(items))
		for i, it := range items {
			cells[i] = it.Outer()
		}
		res.Grid = SolveGrid(cells, p.Available.Width, p.Grid)
	}

	natural := naturalSize(p.Mode, items, res.Grid)
	res.Box = Size{
		Width:  axisBox(natural.Width, p.Available.Width, p.MinInner.Width, p.FitWidth),
		Height: axisBox(natural.Height, p.Available.Height, p.MinInner.Height, p.FitHeight),
	}

	switch p.Mode {
	case ModeVertical:
		stackVertical(items, res.Box, res.Positions)
	case ModeHorizontal:
		stackHorizontal(items, res.Box, res.Positions)
	case ModeGrid:
		placeGrid(items, res.Grid, res.Positions)
	case ModeAbsolute:
		placeAbsolute(items, res.Box, res.Positions)
	case ModeNone:
		for i, it := range items {
			res.Positions[i] = it.Position
		}
	}

	if p.Mode != ModeNone {
		alignContent(p, items, res.Box, res.Positions)
	}
	res.Bounds = union(items, res.Positions)
	return res
}

// axisBox decides the committed inner size on one axis.
func axisBox(natural, available, minimum float64, fit bool) float64 {
	v := available
	if fit || math.IsInf(available, 1) {
		v = min(natural, available)
	}
	return max(v, minimum, 0)
}

func naturalSize(m Mode, items []Item, g Grid) Size {
	var s Size
	switch m {
	case ModeVertical:
		for _, it := range items {
			o := it.Outer()
			s.Width = max(s.Width, o.Width)
			s.Height += o.Height
		}
	case ModeHorizontal:
		for _, it := range items {
			o := it.Outer()
			s.Width += o.Width
			s.Height = max(s.Height, o.Height)
		}
	case ModeGrid:
		s.Width = g.Width()
		s.Height = g.Height()
	case ModeAbsolute:
		for _, it := range items {
			o := it.Outer()
			w, h := o.Width, o.Height
			if !aligned(it.Align) {
				w += it.Position.X - it.Margin.Left
			}
			if !valigned(it.Valign) {
				h += it.Position.Y - it.Margin.Top
			}
			s.Width = max(s.Width, w)
			s.Height = max(s.Height, h)
		}
	case ModeNone:
		for _, it := range items {
			r := it.bounds(it.Position)
			s.Width = max(s.Width, r.Right())
			s.Height = max(s.Height, r.Bottom())
		}
	}
	return s
}

func aligned(a HAlign) bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}

func valigned(v VAlign) bool {
	return v == ValignTop || v == ValignMiddle || v == ValignBottom
}

// crossX places an item horizontally inside a box of the given width.
func crossX(it Item, width float64) float64 {
	if it.Align == AlignNone {
		return it.Position.X
	}
	free := width - it.Outer().Width
	return free*it.Align.factor() + it.Margin.Left
}

// crossY places an item vertically inside a box of the given height.
func crossY(it Item, height float64) float64 {
	if it.Valign == ValignNone {
		return it.Position.Y
	}
	free := height - it.Outer().Height
	return free*it.Valign.factor() + it.Margin.Top
}

func stackVertical(items []Item, box Size, out []Point) {
	var cursor float64
	for i, it := range items {
		cursor += it.Margin.Top
		out[i] = Point{X: crossX(it, box.Width), Y: cursor}
		cursor += it.Size.Height + it.Margin.Bottom + it.Overflow.Height
	}
}

func stackHorizontal(items []Item, box Size, out []Point) {
	var cursor float64
	for i, it := range items {
		cursor += it.Margin.Left
		out[i] = Point{X: cursor, Y: crossY(it, box.Height)}
		cursor += it.Size.Width + it.Margin.Right + it.Overflow.Width
	}
}

func placeGrid(items []Item, g Grid, out []Point) {
	if g.Columns == 0 {
		return
	}
	colX := make([]float64, g.Columns)
	for c := 1; c < g.Columns; c++ {
		colX[c] = colX[c-1] + g.ColumnWidths[c-1]
	}
	rowY := make([]float64, len(g.RowHeights))
	for r := 1; r < len(rowY); r++ {
		rowY[r] = rowY[r-1] + g.RowHeights[r-1]
	}
	for i, it := range items {
		col, row := i%g.Columns, i/g.Columns
		o := it.Outer()
		x := colX[col] + (g.ColumnWidths[col]-o.Width)*it.Align.factor() + it.Margin.Left
		y := rowY[row] + (g.RowHeights[row]-o.Height)*it.Valign.factor() + it.Margin.Top
		out[i] = Point{X: x, Y: y}
	}
}

func placeAbsolute(items []Item, box Size, out []Point) {
	for i, it := range items {
		p := it.Position
		if aligned(it.Align) {
			p.X = crossX(it, box.Width)
		}
		if valigned(it.Valign) {
			p.Y = crossY(it, box.Height)
		}
		out[i] = p
	}
}

// alignContent shifts every participating child by one delta per axis so the
// content block sits where ContentAlign/ContentValign ask inside the box.
func alignContent(p Params, items []Item, box Size, pos []Point) {
	fx, fy := p.ContentAlign.factor(), p.ContentValign.factor()
	if (fx == 0 && fy == 0) || len(items) == 0 {
		return
	}
	extent := union(items, pos)
	dx := (box.Width - extent.Right()) * fx
	dy := (box.Height - extent.Bottom()) * fy
	for i, it := range items {
		if dx != 0 && it.Align != AlignNone {
			pos[i].X += dx
		}
		if dy != 0 && it.Valign != ValignNone {
			pos[i].Y += dy
		}
	}
}

func union(items []Item, pos []Point) Rect {
	if len(items) == 0 {
		return Rect{}
	}
	r := items[0].bounds(pos[0])
	for i := 1; i < len(items); i++ {
		r = r.Union(items[i].bounds(pos[i]))
	}
	return r
}
