package scene

import "slices"

// AddChild appends children to the container. A child that already has a
// parent is moved. Panics with ErrNotContainer on a sprite.
func (n *Node) AddChild(children ...*Node) {
	b := n.mustBox()
	for _, child := range children {
		if child == nil || child.disposed || child.isAncestorOf(n) {
			continue
		}
		if child.parent == n && !child.background {
			continue
		}
		child.unparent()
		child.parent = n
		b.children = append(b.children, child)
		child.attach(n.sys, n.base)
	}
	n.InvalidateLayout()
}

// InsertChild places child at index in the canonical order. The index is
// clamped to the valid range. A child already in this container is moved.
func (n *Node) InsertChild(index int, child *Node) {
	b := n.mustBox()
	if child == nil || child.disposed || child.isAncestorOf(n) {
		return
	}
	if child.parent == n && !child.background {
		n.MoveChild(child, index)
		return
	}
	child.unparent()
	child.parent = n
	index = min(max(index, 0), len(b.children))
	b.children = slices.Insert(b.children, index, child)
	child.attach(n.sys, n.base)
	n.InvalidateLayout()
}

// MoveChild changes child's place in the canonical order. It reports false
// when child does not belong to the container.
func (n *Node) MoveChild(child *Node, index int) bool {
	b := n.mustBox()
	i := slices.Index(b.children, child)
	if i < 0 {
		return false
	}
	b.children = slices.Delete(b.children, i, i+1)
	index = min(max(index, 0), len(b.children))
	b.children = slices.Insert(b.children, index, child)
	n.InvalidateLayout()
	return true
}

// RemoveChild detaches child, keeping the order of the remaining children.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	b := n.mustBox()
	i := slices.Index(b.children, child)
	if i < 0 {
		return false
	}
	b.children = slices.Delete(b.children, i, i+1)
	child.parent = nil
	child.detach()
	n.InvalidateLayout()
	return true
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() {
	b := n.mustBox()
	children := b.children
	b.children = nil
	for _, child := range children {
		child.parent = nil
		child.detach()
	}
	n.InvalidateLayout()
}

// Children returns a copy of the children in canonical order.
func (n *Node) Children() []*Node {
	if n.box == nil {
		return nil
	}
	return slices.Clone(n.box.children)
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	if n.box == nil {
		return 0
	}
	return len(n.box.children)
}

// SetBackground replaces the container's background. The previous background
// is disposed. Passing nil removes it.
func (n *Node) SetBackground(bg *Node) {
	b := n.mustBox()
	if b.background == bg {
		return
	}
	if old := b.background; old != nil {
		b.background = nil
		old.parent = nil
		old.background = false
		old.Dispose()
	}
	if bg != nil && !bg.disposed {
		bg.unparent()
		bg.parent = n
		bg.background = true
		b.background = bg
		bg.attach(n.sys, n.base)
	}
	n.InvalidateLayout()
}

// unparent removes n from its current owner without disposing it.
func (n *Node) unparent() {
	p := n.parent
	if p == nil {
		return
	}
	if n.background {
		if p.box.background == n {
			p.box.background = nil
		}
		n.background = false
		n.parent = nil
		n.detach()
		p.InvalidateLayout()
		return
	}
	p.RemoveChild(n)
}

func (n *Node) isAncestorOf(other *Node) bool {
	for a := other; a != nil; a = a.parent {
		if a == n {
			return true
		}
	}
	return false
}

// attach moves the subtree rooted at n to sys and base, queueing whatever is
// already invalid there.
func (n *Node) attach(sys *System, base BaseID) {
	if n.sys != nil {
		n.sys.registry.PurgeNode(n)
		n.sys.untrackAnimations(n)
	}
	n.sys, n.base = sys, base
	if sys != nil {
		n.enqueueFlags()
		sys.trackAnimations(n)
	}
	if b := n.box; b != nil {
		for _, child := range b.children {
			child.attach(sys, base)
		}
		if b.background != nil {
			b.background.attach(sys, base)
		}
	}
}

func (n *Node) detach() {
	n.attach(nil, NoBase)
}

// walk calls fn for n and every descendant, backgrounds included, parents
// first.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	if b := n.box; b != nil {
		if b.background != nil {
			b.background.walk(fn)
		}
		for _, child := range b.children {
			child.walk(fn)
		}
	}
}
