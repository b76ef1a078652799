package scene

// Setters mark whatever they affect as invalid. They are safe to call on a
// detached node; the flags are queued once it is attached.

func (n *Node) SetName(name string) {
	n.name = name
}

// SetWidth changes the requested width.
func (n *Node) SetWidth(v Value) {
	if n.width == v {
		return
	}
	n.width = v
	n.invalidateSizing()
}

// SetHeight changes the requested height.
func (n *Node) SetHeight(v Value) {
	if n.height == v {
		return
	}
	n.height = v
	n.invalidateSizing()
}

// SetSize sets a fixed width and height in pixels.
func (n *Node) SetSize(width, height float64) {
	n.SetWidth(Fixed(width))
	n.SetHeight(Fixed(height))
}

func (n *Node) SetMinWidth(px float64) {
	if n.minWidth == px {
		return
	}
	n.minWidth = px
	n.invalidateSizing()
}

func (n *Node) SetMinHeight(px float64) {
	if n.minHeight == px {
		return
	}
	n.minHeight = px
	n.invalidateSizing()
}

func (n *Node) SetMaxWidth(px float64) {
	if n.maxWidth == px {
		return
	}
	n.maxWidth = px
	n.invalidateSizing()
}

func (n *Node) SetMaxHeight(px float64) {
	if n.maxHeight == px {
		return
	}
	n.maxHeight = px
	n.invalidateSizing()
}

func (n *Node) SetMargin(e Edges) {
	if n.margin == e {
		return
	}
	n.margin = e
	n.relayoutParent()
}

func (n *Node) SetPadding(e Edges) {
	if n.padding == e {
		return
	}
	n.padding = e
	n.invalidateSizing()
}

// SetOverflow sets extra space the node occupies past its box when stacked.
func (n *Node) SetOverflow(x, y float64) {
	if n.overflowX == x && n.overflowY == y {
		return
	}
	n.overflowX, n.overflowY = x, y
	n.relayoutParent()
}

func (n *Node) SetIgnoreOverflow(ignore bool) {
	if n.ignoreOverflow == ignore {
		return
	}
	n.ignoreOverflow = ignore
	n.relayoutParent()
}

func (n *Node) SetAlign(a HAlign) {
	if n.align == a {
		return
	}
	n.align = a
	n.relayoutParent()
}

func (n *Node) SetValign(v VAlign) {
	if n.valign == v {
		return
	}
	n.valign = v
	n.relayoutParent()
}

// SetPosition changes the requested position.
func (n *Node) SetPosition(x, y float64) {
	if n.x == x && n.y == y {
		return
	}
	n.x, n.y = x, y
	n.InvalidatePosition()
}

func (n *Node) SetX(x float64) { n.SetPosition(x, n.y) }

func (n *Node) SetY(y float64) { n.SetPosition(n.x, y) }

// SetMeasured includes or excludes the node from its parent's layout.
func (n *Node) SetMeasured(measured bool) {
	if n.measured == measured {
		return
	}
	n.measured = measured
	n.relayoutParent()
	if !measured {
		n.InvalidatePosition()
	}
}

// SetDisabled hides the node from its parent's layout and from the visual
// stage. Re-enabling invalidates it.
func (n *Node) SetDisabled(disabled bool) {
	if n.disabled == disabled {
		return
	}
	n.disabled = disabled
	if !disabled {
		n.invalidateSelf()
	}
	n.relayoutParent()
}

// SetContent replaces the measurer.
func (n *Node) SetContent(c Content) {
	n.content = c
	n.invalidateSelf()
}

// SetRenderingFrequency lets visual updates lag by up to frames ticks.
// Zero validates on every tick.
func (n *Node) SetRenderingFrequency(frames int) {
	n.renderingFrequency = max(0, frames)
	n.renderingFrame = n.renderingFrequency
}

// --- container setters ---

// SetMode switches the layout algorithm.
func (n *Node) SetMode(m Mode) {
	b := n.mustBox()
	if b.mode == m {
		return
	}
	b.mode = m
	if m == NoLayout {
		n.RemoveFromInvalidLayout()
	}
	n.InvalidateLayout()
}

func (n *Node) SetContentAlign(a HAlign) {
	b := n.mustBox()
	if b.contentAlign == a {
		return
	}
	b.contentAlign = a
	n.InvalidateLayout()
}

func (n *Node) SetContentValign(v VAlign) {
	b := n.mustBox()
	if b.contentValign == v {
		return
	}
	b.contentValign = v
	n.InvalidateLayout()
}

func (n *Node) SetFixedWidthGrid(fixed bool) {
	b := n.mustBox()
	if b.fixedWidthGrid == fixed {
		return
	}
	b.fixedWidthGrid = fixed
	n.InvalidateLayout()
}

func (n *Node) SetMaxColumns(columns int) {
	b := n.mustBox()
	columns = max(0, columns)
	if b.maxColumns == columns {
		return
	}
	b.maxColumns = columns
	n.InvalidateLayout()
}

// invalidateSelf schedules the node's own recomputation.
func (n *Node) invalidateSelf() {
	if n.box != nil {
		n.InvalidateLayout()
		return
	}
	n.Invalidate()
}

// invalidateSizing is used when something the parent prices the node by
// changed: the node recomputes and the parent redistributes.
func (n *Node) invalidateSizing() {
	n.invalidateSelf()
	n.relayoutParent()
}

func (n *Node) relayoutParent() {
	if n.parent != nil && !n.background {
		n.parent.InvalidateLayout()
	}
}

func (n *Node) mustBox() *box {
	if n.box == nil {
		panic(ErrNotContainer)
	}
	return n.box
}
