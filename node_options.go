package scene

// Option configures a Node at construction time.
type Option func(*Node)

// WithName labels the node in logs and errors.
func WithName(name string) Option {
	return func(n *Node) {
		n.name = name
	}
}

// --- Dimension Options ---

// WithWidth sets the requested width.
func WithWidth(v Value) Option {
	return func(n *Node) {
		n.width = v
	}
}

// WithHeight sets the requested height.
func WithHeight(v Value) Option {
	return func(n *Node) {
		n.height = v
	}
}

// WithSize sets a fixed width and height in pixels.
func WithSize(width, height float64) Option {
	return func(n *Node) {
		n.width = Fixed(width)
		n.height = Fixed(height)
	}
}

// WithMinWidth sets the minimum width in pixels.
func WithMinWidth(px float64) Option {
	return func(n *Node) {
		n.minWidth = px
	}
}

// WithMinHeight sets the minimum height in pixels.
func WithMinHeight(px float64) Option {
	return func(n *Node) {
		n.minHeight = px
	}
}

// WithMaxWidth sets the maximum width in pixels.
func WithMaxWidth(px float64) Option {
	return func(n *Node) {
		n.maxWidth = px
	}
}

// WithMaxHeight sets the maximum height in pixels.
func WithMaxHeight(px float64) Option {
	return func(n *Node) {
		n.maxHeight = px
	}
}

// --- Spacing Options ---

// WithMargin sets the space kept around the node inside its parent.
func WithMargin(e Edges) Option {
	return func(n *Node) {
		n.margin = e
	}
}

// WithPadding sets the space between a container's box and its children.
func WithPadding(e Edges) Option {
	return func(n *Node) {
		n.padding = e
	}
}

// WithOverflow sets extra space the node occupies past its box when stacked.
func WithOverflow(x, y float64) Option {
	return func(n *Node) {
		n.overflowX = x
		n.overflowY = y
	}
}

// WithIgnoreOverflow stops the parent from reserving the node's overflow.
func WithIgnoreOverflow() Option {
	return func(n *Node) {
		n.ignoreOverflow = true
	}
}

// --- Placement Options ---

// WithAlign sets the node's horizontal alignment inside its parent.
func WithAlign(a HAlign) Option {
	return func(n *Node) {
		n.align = a
	}
}

// WithValign sets the node's vertical alignment inside its parent.
func WithValign(v VAlign) Option {
	return func(n *Node) {
		n.valign = v
	}
}

// WithPosition sets the requested position, used by absolute layouts for
// unaligned children and by NoLayout containers.
func WithPosition(x, y float64) Option {
	return func(n *Node) {
		n.x = x
		n.y = y
	}
}

// WithoutMeasure keeps the node out of its parent's layout. It is placed at
// its requested position and does not contribute to the parent's size.
func WithoutMeasure() Option {
	return func(n *Node) {
		n.measured = false
	}
}

// WithDisabled creates the node disabled.
func WithDisabled() Option {
	return func(n *Node) {
		n.disabled = true
	}
}

// --- Content Options ---

// WithContent sets the measurer used when a dimension is Auto.
func WithContent(c Content) Option {
	return func(n *Node) {
		n.content = c
	}
}

// WithRenderingFrequency lets visual updates lag by up to frames ticks.
func WithRenderingFrequency(frames int) Option {
	return func(n *Node) {
		n.renderingFrequency = max(0, frames)
		n.renderingFrame = n.renderingFrequency
	}
}

// --- Container Options ---
// These are ignored on sprites.

// WithContentAlign shifts all children horizontally once their extent is known.
func WithContentAlign(a HAlign) Option {
	return func(n *Node) {
		if n.box != nil {
			n.box.contentAlign = a
		}
	}
}

// WithContentValign shifts all children vertically once their extent is known.
func WithContentValign(v VAlign) Option {
	return func(n *Node) {
		if n.box != nil {
			n.box.contentValign = v
		}
	}
}

// WithFixedWidthGrid gives every grid column the width of the widest child.
func WithFixedWidthGrid() Option {
	return func(n *Node) {
		if n.box != nil {
			n.box.fixedWidthGrid = true
		}
	}
}

// WithMaxColumns caps the number of grid columns.
func WithMaxColumns(columns int) Option {
	return func(n *Node) {
		if n.box != nil {
			n.box.maxColumns = max(0, columns)
		}
	}
}

// WithBackground sets the node drawn behind the children and sized to the box.
func WithBackground(bg *Node) Option {
	return func(n *Node) {
		if n.box != nil {
			n.SetBackground(bg)
		}
	}
}

// WithChildren appends children in order.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		if n.box != nil {
			n.AddChild(children...)
		}
	}
}
