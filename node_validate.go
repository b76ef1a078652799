package scene

import "math"

// Validate recomputes the node's size. A sprite measures itself; a container
// runs its layout pass. The node is dequeued first, so a failing node stays
// invalid but is only retried once something invalidates it again.
func (n *Node) Validate() error {
	if n.disposed {
		return ErrDisposed
	}
	switch n.kind {
	case KindSprite:
		return n.validateSprite()
	case KindContainer:
		// A container's validity lives in its layout state.
		n.RemoveFromInvalid()
		n.invalid = false
		return n.validateLayout()
	default:
		panic("scene: unknown node kind " + n.kind.String())
	}
}

func (n *Node) validateSprite() error {
	n.RemoveFromInvalid()
	if p, ok := n.content.(Preparer); ok {
		if err := p.Prepare(); err != nil {
			n.lastErr = err
			return err
		}
	}
	w, h := n.measure()
	n.invalid = false
	n.lastErr = nil
	n.renderingFrame = n.renderingFrequency
	n.commitSize(w, h)
	return nil
}

// measure resolves the sprite's border box from its requested size, the
// space its parent assigned and its Content.
func (n *Node) measure() (w, h float64) {
	maxW := min(n.maxWidth, n.pixelMaxWidth)
	maxH := min(n.maxHeight, n.pixelMaxHeight)

	var natural Size
	if n.content != nil && (n.width.IsAuto() || n.height.IsAuto()) {
		natural = n.content.Measure(maxW, maxH)
	}
	w = resolveAxis(n.width, natural.Width, n.pixelMaxWidth, maxW)
	h = resolveAxis(n.height, natural.Height, n.pixelMaxHeight, maxH)
	return clamp(w, n.minWidth, n.maxWidth), clamp(h, n.minHeight, n.maxHeight)
}

func resolveAxis(v Value, natural, pixelMax, limit float64) float64 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitPercent:
		if math.IsInf(pixelMax, 1) {
			return 0
		}
		return pixelMax
	default:
		return min(natural, limit)
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(min(v, hi), lo, 0)
}

// commitSize stores the measured box and tells the parent about it.
func (n *Node) commitSize(w, h float64) {
	changed := w != n.measuredWidth || h != n.measuredHeight
	n.measuredWidth, n.measuredHeight = w, h
	if changed {
		n.events.Emit(EventTransformed, n)
	}
	n.notifyParent(changed)
}

// notifyParent invalidates the parent's layout when this node's box changed
// or the parent is waiting for its children to settle. A parent that is in
// the middle of its own pass picks the size up directly.
func (n *Node) notifyParent(changed bool) {
	p := n.parent
	if p == nil || p.disposed || n.background || !n.measured || n.disabled {
		return
	}
	switch p.box.state {
	case LayoutMeasuring, LayoutArranging:
		return
	case LayoutInvalid:
		p.InvalidateLayout()
	default:
		if changed {
			p.InvalidateLayout()
		}
	}
}

// ValidatePosition applies the requested position. Nodes managed by a parent
// layout ask the parent to re-arrange instead.
func (n *Node) ValidatePosition() error {
	n.RemoveFromInvalidPosition()
	if n.disposed {
		return ErrDisposed
	}
	n.positionInvalid = false
	if p := n.parent; p != nil && n.measured && !n.background {
		p.InvalidateLayout()
		return nil
	}
	n.MoveTo(n.x, n.y)
	return nil
}

// MoveTo commits a position relative to the parent's box.
func (n *Node) MoveTo(x, y float64) {
	if n.pixelX == x && n.pixelY == y {
		return
	}
	n.pixelX, n.pixelY = x, y
	n.events.Emit(EventPositionChanged, n)
}

// setPixelMax records the space the parent offers and invalidates the node
// when its size depends on it.
func (n *Node) setPixelMax(w, h float64) {
	if n.pixelMaxWidth == w && n.pixelMaxHeight == h {
		return
	}
	n.pixelMaxWidth, n.pixelMaxHeight = w, h
	n.events.Emit(EventMaxSizeChanged, n)
	if !n.width.IsFixed() || !n.height.IsFixed() {
		n.invalidateSelf()
	}
}
