package scene

import (
	"github.com/grindlemire/go-scene/internal/layout"
)

// validateLayout is the container's measure pass. Relative children are
// priced against the space left by their fixed siblings and validated on the
// spot; once every participating child is valid the container arranges them.
// Otherwise it stays LayoutInvalid and is revisited when a child settles.
func (n *Node) validateLayout() error {
	b := n.box
	n.RemoveFromInvalidLayout()
	n.layoutInvalid = false
	b.state = LayoutMeasuring

	avail := n.innerAvailable()
	children := n.participants()
	relative := func(c *Node) bool {
		return layout.IsRelative(b.mode, c.width, c.height)
	}
	sorted := layout.SortFixedFirst(children, relative)

	var sumW, sumH float64
	for _, c := range children {
		if c.width.IsPercent() {
			sumW += c.width.Amount
		}
		if c.height.IsPercent() {
			sumH += c.height.Amount
		}
	}

	distW, distH := layout.Distributes(b.mode)
	stackW, stackH := layout.Stacks(b.mode)
	poolW, poolH := avail.Width, avail.Height
	allValid := true

	for _, c := range sorted {
		if n.disposed {
			return ErrDisposed
		}
		if c.disposed || c.parent != n {
			continue
		}

		maxW, maxH := avail.Width, avail.Height
		c.relativeWidth, c.relativeHeight = 0, 0
		if c.width.IsPercent() {
			c.relativeWidth = layout.RelativeFraction(c.width.Amount, sumW, distW)
			maxW = layout.RelativeSize(avail.Width, c.relativeWidth, c.margin.Horizontal())
			if stackW {
				maxW = min(maxW, max(0, poolW-c.margin.Horizontal()))
			}
		}
		if c.height.IsPercent() {
			c.relativeHeight = layout.RelativeFraction(c.height.Amount, sumH, distH)
			maxH = layout.RelativeSize(avail.Height, c.relativeHeight, c.margin.Vertical())
			if stackH {
				maxH = min(maxH, max(0, poolH-c.margin.Vertical()))
			}
		}
		c.setPixelMax(maxW, maxH)

		if relative(c) && c.invalid {
			if err := safeCall(c.Validate); err != nil {
				b.state = LayoutInvalid
				return nodeFailure(c, StageVisual, err)
			}
		}
		if c.disposed || c.parent != n {
			continue
		}
		if !c.IsValid() {
			allValid = false
			continue
		}
		outer := c.layoutItem().Outer()
		if stackW {
			poolW -= outer.Width
		}
		if stackH {
			poolH -= outer.Height
		}
	}

	if n.disposed {
		return ErrDisposed
	}
	if !allValid {
		b.state = LayoutInvalid
		return nil
	}
	n.arrange(avail, n.participants())
	return nil
}

// arrange positions the participating children, sizes the container to
// them and commits the result.
func (n *Node) arrange(avail Size, children []*Node) {
	b := n.box
	b.state = LayoutArranging

	items := make([]layout.Item, len(children))
	for i, c := range children {
		items[i] = c.layoutItem()
	}
	res := layout.Arrange(layout.Params{
		Mode:          b.mode,
		Available:     avail,
		FitWidth:      n.width.IsAuto(),
		FitHeight:     n.height.IsAuto(),
		MinInner:      Size{Width: max(0, n.minWidth-n.padding.Horizontal()), Height: max(0, n.minHeight-n.padding.Vertical())},
		ContentAlign:  b.contentAlign,
		ContentValign: b.contentValign,
		Grid:          layout.GridOptions{FixedWidth: b.fixedWidthGrid, MaxColumns: b.maxColumns},
	}, items)

	for i, c := range children {
		c.MoveTo(n.padding.Left+res.Positions[i].X, n.padding.Top+res.Positions[i].Y)
	}
	for _, c := range b.children {
		if !c.measured && !c.disabled {
			c.MoveTo(c.x, c.y)
		}
	}
	if n.disposed {
		return
	}

	w := clamp(res.Box.Width+n.padding.Horizontal(), n.minWidth, n.maxWidth)
	h := clamp(res.Box.Height+n.padding.Vertical(), n.minHeight, n.maxHeight)
	b.grid = res.Grid
	b.bounds = res.Bounds
	if bg := b.background; bg != nil && !bg.disposed {
		bg.SetSize(w, h)
		bg.MoveTo(0, 0)
	}

	b.state = LayoutValid
	n.lastErr = nil
	n.commitSize(w, h)
}

// innerAvailable returns the content box the container can offer children.
// An axis is +Inf when neither a fixed size nor any max bounds it.
func (n *Node) innerAvailable() Size {
	outer := layout.Rect{
		Width:  outerAvailable(n.width, n.maxWidth, n.pixelMaxWidth),
		Height: outerAvailable(n.height, n.maxHeight, n.pixelMaxHeight),
	}
	inner := outer.Inset(n.padding).Size()
	return Size{Width: max(0, inner.Width), Height: max(0, inner.Height)}
}

func outerAvailable(v Value, userMax, pixelMax float64) float64 {
	if v.IsFixed() {
		return v.Amount
	}
	return min(userMax, pixelMax)
}

// participants returns the children that take part in layout, in canonical
// order.
func (n *Node) participants() []*Node {
	out := make([]*Node, 0, len(n.box.children))
	for _, c := range n.box.children {
		if c.measured && !c.disabled && !c.disposed {
			out = append(out, c)
		}
	}
	return out
}

func (n *Node) layoutItem() layout.Item {
	it := layout.Item{
		Size:     n.MeasuredSize(),
		Margin:   n.margin,
		Align:    n.align,
		Valign:   n.valign,
		Position: Point{X: n.x, Y: n.y},
	}
	if !n.ignoreOverflow {
		it.Overflow = Size{Width: n.overflowX, Height: n.overflowY}
	}
	return it
}

// ValidateLayout runs the container's layout pass. On sprites it is Validate.
func (n *Node) ValidateLayout() error {
	if n.disposed {
		return ErrDisposed
	}
	if n.box == nil || n.box.mode == NoLayout {
		n.RemoveFromInvalidLayout()
		n.layoutInvalid = false
		return n.Validate()
	}
	return n.validateLayout()
}
