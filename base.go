package scene

import (
	"slices"

	"github.com/google/uuid"
)

// BaseID identifies a top-level scene tree. Work is queued per base so that
// independent trees sharing a System never wait on each other's queues.
type BaseID = uuid.UUID

// NoBase is the bucket for nodes adopted without a base.
var NoBase = uuid.Nil

// Viewport reports the space a base root may fill.
type Viewport interface {
	Size() (width, height float64)
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	Width, Height float64
}

func (v FixedViewport) Size() (float64, float64) {
	return v.Width, v.Height
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() (width, height float64)

func (f ViewportFunc) Size() (float64, float64) {
	return f()
}

// Base is a mounted top-level tree.
type Base struct {
	id       BaseID
	sys      *System
	root     *Node
	viewport Viewport

	width, height float64
	disposed      bool
}

// NewBase mounts root as a new base sized by vp. The root must be parentless
// and not yet attached to a System.
func (s *System) NewBase(root *Node, vp Viewport) (*Base, error) {
	if err := s.checkMountable(root); err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	b := &Base{id: id, sys: s, root: root, viewport: vp}
	s.registry.registerBase(id)
	s.bases = append(s.bases, b)
	root.attach(s, id)
	b.measure()
	root.InvalidatePosition()
	s.logger.Debug("base mounted", "base", id.String(), "root", root.String())
	return b, nil
}

func (b *Base) ID() BaseID { return b.id }

func (b *Base) Root() *Node { return b.root }

func (b *Base) Viewport() Viewport { return b.viewport }

// Size returns the viewport size read at the last remeasure.
func (b *Base) Size() (width, height float64) {
	return b.width, b.height
}

// Settled reports whether nothing is queued for this base.
func (b *Base) Settled() bool {
	return b.sys.registry.Settled(b.id)
}

// NodeCount returns the number of nodes in the base's tree.
func (b *Base) NodeCount() int {
	if b.disposed {
		return 0
	}
	count := 0
	b.root.walk(func(*Node) { count++ })
	return count
}

// Dispose disposes the root and forgets the base.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.root.Dispose()
	b.sys.registry.unregisterBase(b.id)
	if i := slices.Index(b.sys.bases, b); i >= 0 {
		b.sys.bases = slices.Delete(b.sys.bases, i, i+1)
	}
}

// measure reads the viewport and hands its size to the root.
func (b *Base) measure() {
	if b.viewport == nil || b.disposed {
		return
	}
	w, h := b.viewport.Size()
	if w == b.width && h == b.height && b.root.pixelMaxWidth == w && b.root.pixelMaxHeight == h {
		return
	}
	b.width, b.height = w, h
	b.root.setPixelMax(w, h)
}

// measureBases reads every base viewport.
func (s *System) measureBases() {
	for _, b := range s.Bases() {
		b.measure()
	}
}
