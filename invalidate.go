package scene

// Invalidate marks the node's visual state stale and queues it for the visual
// stage. Queuing is idempotent.
func (n *Node) Invalidate() {
	if n.disposed {
		return
	}
	n.invalid = true
	if n.sys != nil {
		n.sys.registry.AddNode(QueueVisual, n)
	}
}

// InvalidateLayout marks a container's layout stale and queues it for the
// layout stage. On sprites and NoLayout containers it is Invalidate.
func (n *Node) InvalidateLayout() {
	if n.disposed {
		return
	}
	if n.box == nil || n.box.mode == NoLayout {
		n.Invalidate()
		if n.box != nil {
			n.box.state = LayoutInvalid
		}
		return
	}
	n.layoutInvalid = true
	n.box.state = LayoutInvalid
	if n.sys != nil {
		n.sys.registry.AddNode(QueueLayouts, n)
	}
}

// InvalidatePosition queues the node for the position stage.
func (n *Node) InvalidatePosition() {
	if n.disposed {
		return
	}
	n.positionInvalid = true
	if n.sys != nil {
		n.sys.registry.AddNode(QueuePositions, n)
	}
}

// RemoveFromInvalid dequeues the node from the visual stage. The invalid
// flag is left alone; only a successful Validate clears it.
func (n *Node) RemoveFromInvalid() {
	if n.sys != nil {
		n.sys.registry.RemoveNode(QueueVisual, n)
	}
}

// RemoveFromInvalidLayout dequeues the node from the layout stage.
func (n *Node) RemoveFromInvalidLayout() {
	if n.sys != nil {
		n.sys.registry.RemoveNode(QueueLayouts, n)
	}
}

// RemoveFromInvalidPosition dequeues the node from the position stage.
func (n *Node) RemoveFromInvalidPosition() {
	if n.sys != nil {
		n.sys.registry.RemoveNode(QueuePositions, n)
	}
}

// enqueueFlags queues the node for every stage its flags say it needs.
func (n *Node) enqueueFlags() {
	if n.invalid {
		n.sys.registry.AddNode(QueueVisual, n)
	}
	if n.layoutInvalid {
		n.sys.registry.AddNode(QueueLayouts, n)
	}
	if n.positionInvalid {
		n.sys.registry.AddNode(QueuePositions, n)
	}
}
