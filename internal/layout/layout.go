package layout

// Item is a child as seen by the arrange pass: its committed size plus the
// spacing and alignment that decide where it goes.
type Item struct {
	// Size is the child's measured border box.
	Size Size

	// Margin is added around the border box when stacking and bounding.
	Margin Edges

	// Overflow is extra space the child occupies past its box on the
	// stacking axis. Zero when the child ignores overflow.
	Overflow Size

	Align  HAlign
	Valign VAlign

	// Position is the child's explicit position, used when it is not
	// aligned by the layout.
	Position Point
}

// Outer returns the space the item occupies including margin and overflow.
func (it Item) Outer() Size {
	return Size{
		Width:  it.Size.Width + it.Margin.Horizontal() + it.Overflow.Width,
		Height: it.Size.Height + it.Margin.Vertical() + it.Overflow.Height,
	}
}

// bounds returns the item's outer rectangle when its border box sits at p.
func (it Item) bounds(p Point) Rect {
	return Rect{
		X:      p.X - it.Margin.Left,
		Y:      p.Y - it.Margin.Top,
		Width:  it.Size.Width + it.Margin.Horizontal() + it.Overflow.Width,
		Height: it.Size.Height + it.Margin.Vertical() + it.Overflow.Height,
	}
}
