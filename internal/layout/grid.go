package layout

import "math"

// GridOptions configures SolveGrid.
type GridOptions struct {
	// FixedWidth gives every column the width of the widest cell.
	FixedWidth bool

	// MaxColumns caps the column count. Zero means no cap.
	MaxColumns int
}

// Grid is a solved column layout.
type Grid struct {
	Columns      int
	ColumnWidths []float64
	RowHeights   []float64

	// Restarts counts how many times the walk overflowed the available width
	// and started over with one column fewer.
	Restarts int
}

// Width returns the total width of all columns.
func (g Grid) Width() float64 {
	var w float64
	for _, cw := range g.ColumnWidths {
		w += cw
	}
	return w
}

// Height returns the total height of all rows.
func (g Grid) Height() float64 {
	var h float64
	for _, rh := range g.RowHeights {
		h += rh
	}
	return h
}

// SolveGrid flows cells (outer sizes, in order) into columns that fit the
// available width.
//
// Equal-width grids derive the column count directly from the widest cell.
// Otherwise the walk starts with every cell in one row and, whenever the row
// cursor passes the available width, drops a column and restarts from the
// top. The result is greedy, not globally optimal.
func SolveGrid(cells []Size, available float64, opts GridOptions) Grid {
	n := len(cells)
	if n == 0 {
		return Grid{}
	}

	var widest float64
	for _, c := range cells {
		widest = max(widest, c.Width)
	}

	columns := n
	if opts.FixedWidth && widest > 0 && !math.IsInf(available, 1) {
		columns = int(math.Floor(available / widest))
	}
	if opts.MaxColumns > 0 {
		columns = min(columns, opts.MaxColumns)
	}
	columns = min(max(columns, 1), n)

	g := Grid{Columns: columns}
	for {
		g.ColumnWidths = columnWidths(cells, g.Columns, opts.FixedWidth, widest)
		if g.Columns == 1 || walkFits(g.ColumnWidths, n, available) {
			break
		}
		g.Columns--
		g.Restarts++
	}

	rows := (n + g.Columns - 1) / g.Columns
	g.RowHeights = make([]float64, rows)
	for i, c := range cells {
		r := i / g.Columns
		g.RowHeights[r] = max(g.RowHeights[r], c.Height)
	}
	return g
}

// walkFits advances a row/column cursor over n cells and reports whether it
// stays inside the available width.
func walkFits(widths []float64, n int, available float64) bool {
	columns := len(widths)
	var x float64
	for i := 0; i < n; i++ {
		col := i % columns
		if col == 0 {
			x = 0
		}
		x += widths[col]
		if x > available {
			return false
		}
	}
	return true
}

func columnWidths(cells []Size, columns int, fixed bool, widest float64) []float64 {
	widths := make([]float64, columns)
	if fixed {
		for i := range widths {
			widths[i] = widest
		}
		return widths
	}
	for i, c := range cells {
		col := i % columns
		widths[col] = max(widths[col], c.Width)
	}
	return widths
}
