package scene

// Dispose removes the node from its parent and from every queue, stops its
// animations and disposes its children and background. It is safe to call
// mid-validation and more than once.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.unparent()
	n.detach()

	if b := n.box; b != nil {
		children := b.children
		b.children = nil
		for _, c := range children {
			c.parent = nil
			c.Dispose()
		}
		if bg := b.background; bg != nil {
			b.background = nil
			bg.parent = nil
			bg.Dispose()
		}
	}
	n.animations = nil
	n.events.Clear()
}
