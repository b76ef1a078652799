package scene

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/grindlemire/go-scene/internal/layout"
)

// NodeID identifies a node for the lifetime of the process.
type NodeID uint64

var nextNodeID atomic.Uint64

// Content measures what a sprite draws when its size is Auto.
// maxWidth and maxHeight may be +Inf when nothing bounds the node.
type Content interface {
	Measure(maxWidth, maxHeight float64) Size
}

// Preparer is an optional Content extension. Prepare runs before Measure on
// every validation and a returned error fails the node's validation.
type Preparer interface {
	Prepare() error
}

// Validatable is anything the visual stage can validate.
type Validatable interface {
	Validate() error
	IsDisposed() bool
}

// Layoutable is a node that arranges children.
type Layoutable interface {
	Validatable
	InvalidateLayout()
	LayoutState() LayoutState
}

var (
	_ Validatable = (*Node)(nil)
	_ Layoutable  = (*Node)(nil)
)

// Node is the unit of invalidation. A Node of KindSprite is a leaf measured
// from its requested size or Content; a Node of KindContainer additionally
// owns ordered children and lays them out.
type Node struct {
	id   NodeID
	kind Kind
	name string

	sys    *System
	base   BaseID
	parent *Node

	// background is set on a node owned as its parent's background.
	background bool

	invalid         bool
	layoutInvalid   bool
	positionInvalid bool
	disabled        bool
	disposed        bool

	// measured nodes take part in their parent's layout.
	measured bool

	renderingFrequency int
	renderingFrame     int

	width, height       Value
	minWidth, minHeight float64
	maxWidth, maxHeight float64

	// pixelMax* is the space the parent assigned during its last layout.
	pixelMaxWidth, pixelMaxHeight float64

	relativeWidth, relativeHeight float64

	margin, padding      Edges
	overflowX, overflowY float64
	ignoreOverflow       bool
	align                HAlign
	valign               VAlign

	x, y                          float64
	pixelX, pixelY                float64
	measuredWidth, measuredHeight float64

	content    Content
	box        *box
	events     Dispatcher[*Node]
	animations []Animation
	lastErr    error
}

// LayoutState tracks where a container is in its layout pass.
type LayoutState uint8

const (
	LayoutInvalid LayoutState = iota
	LayoutMeasuring
	LayoutArranging
	LayoutValid
)

func (s LayoutState) String() string {
	switch s {
	case LayoutInvalid:
		return "invalid"
	case LayoutMeasuring:
		return "measuring"
	case LayoutArranging:
		return "arranging"
	case LayoutValid:
		return "valid"
	default:
		return "unknown"
	}
}

// box is the layout capability carried by containers.
type box struct {
	// children is the canonical order, which is also z-order.
	children []*Node
	mode     Mode

	contentAlign  HAlign
	contentValign VAlign

	background *Node

	fixedWidthGrid bool
	maxColumns     int

	state  LayoutState
	grid   layout.Grid
	bounds Rect
}

func newNode(kind Kind) *Node {
	return &Node{
		id:             NodeID(nextNodeID.Add(1)),
		kind:           kind,
		base:           NoBase,
		invalid:        true,
		measured:       true,
		maxWidth:       math.Inf(1),
		maxHeight:      math.Inf(1),
		pixelMaxWidth:  math.Inf(1),
		pixelMaxHeight: math.Inf(1),
	}
}

// NewSprite creates a detached leaf node.
func NewSprite(opts ...Option) *Node {
	n := newNode(KindSprite)
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewContainer creates a detached container laying out its children with mode.
func NewContainer(mode Mode, opts ...Option) *Node {
	n := newNode(KindContainer)
	n.box = &box{mode: mode}
	if mode != NoLayout {
		n.layoutInvalid = true
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ID returns the node's process-unique identifier.
func (n *Node) ID() NodeID { return n.id }

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) Name() string { return n.name }

func (n *Node) String() string {
	if n.name != "" {
		return fmt.Sprintf("%s#%d(%s)", n.kind, n.id, n.name)
	}
	return fmt.Sprintf("%s#%d", n.kind, n.id)
}

// IsContainer reports whether the node carries the layout capability.
func (n *Node) IsContainer() bool { return n.box != nil }

// System returns the system the node is attached to, or nil when detached.
func (n *Node) System() *System { return n.sys }

// Base returns the base the node is scheduled under.
func (n *Node) Base() BaseID { return n.base }

// Parent returns the owning container, or nil for roots and detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// IsBackground reports whether the node is owned as a container background.
func (n *Node) IsBackground() bool { return n.background }

func (n *Node) IsInvalid() bool         { return n.invalid }
func (n *Node) IsLayoutInvalid() bool   { return n.layoutInvalid }
func (n *Node) IsPositionInvalid() bool { return n.positionInvalid }
func (n *Node) IsDisabled() bool        { return n.disabled }
func (n *Node) IsDisposed() bool        { return n.disposed }

// IsMeasured reports whether the node takes part in its parent's layout.
func (n *Node) IsMeasured() bool { return n.measured }

// IsValid reports whether nothing about the node is pending.
func (n *Node) IsValid() bool {
	if n.invalid || n.disposed {
		return false
	}
	return n.box == nil || n.box.state == LayoutValid
}

// Err returns the error from the node's last failed validation, or nil once
// it validates again.
func (n *Node) Err() error { return n.lastErr }

// On registers fn for events of type t targeting this node.
func (n *Node) On(t EventType, fn func(*Node)) Unbind {
	return n.events.On(t, fn)
}

// --- geometry ---

func (n *Node) Width() Value  { return n.width }
func (n *Node) Height() Value { return n.height }

func (n *Node) MinWidth() float64  { return n.minWidth }
func (n *Node) MinHeight() float64 { return n.minHeight }
func (n *Node) MaxWidth() float64  { return n.maxWidth }
func (n *Node) MaxHeight() float64 { return n.maxHeight }

// MeasuredWidth returns the committed border-box width.
func (n *Node) MeasuredWidth() float64 { return n.measuredWidth }

// MeasuredHeight returns the committed border-box height.
func (n *Node) MeasuredHeight() float64 { return n.measuredHeight }

// MeasuredSize returns the committed border-box size.
func (n *Node) MeasuredSize() Size {
	return Size{Width: n.measuredWidth, Height: n.measuredHeight}
}

// PixelMaxWidth returns the width the parent assigned in its last layout pass.
func (n *Node) PixelMaxWidth() float64 { return n.pixelMaxWidth }

// PixelMaxHeight returns the height the parent assigned in its last layout pass.
func (n *Node) PixelMaxHeight() float64 { return n.pixelMaxHeight }

// RelativeWidth returns the fraction of the parent's width the node was
// priced at, after sibling normalisation.
func (n *Node) RelativeWidth() float64 { return n.relativeWidth }

// RelativeHeight is RelativeWidth for the vertical axis.
func (n *Node) RelativeHeight() float64 { return n.relativeHeight }

func (n *Node) Margin() Edges  { return n.margin }
func (n *Node) Padding() Edges { return n.padding }
func (n *Node) Align() HAlign  { return n.align }
func (n *Node) Valign() VAlign { return n.valign }

// X returns the requested x position.
func (n *Node) X() float64 { return n.x }

// Y returns the requested y position.
func (n *Node) Y() float64 { return n.y }

// PixelX returns the committed x position, relative to the parent's box.
func (n *Node) PixelX() float64 { return n.pixelX }

// PixelY returns the committed y position, relative to the parent's box.
func (n *Node) PixelY() float64 { return n.pixelY }

// Position returns the committed position relative to the parent's box.
func (n *Node) Position() Point { return Point{X: n.pixelX, Y: n.pixelY} }

// Bounds returns the committed box in the parent's coordinates.
func (n *Node) Bounds() Rect {
	return NewRect(n.pixelX, n.pixelY, n.measuredWidth, n.measuredHeight)
}

// GlobalPosition returns the committed position in root coordinates.
func (n *Node) GlobalPosition() Point {
	p := n.Position()
	for a := n.parent; a != nil; a = a.parent {
		p = p.Add(a.Position())
	}
	return p
}

// Content returns the node's measurer, if any.
func (n *Node) Content() Content { return n.content }

// RenderingFrequency returns how many frames a visual update may be deferred.
func (n *Node) RenderingFrequency() int { return n.renderingFrequency }

// --- container ---

// Mode returns the layout mode, or NoLayout for sprites.
func (n *Node) Mode() Mode {
	if n.box == nil {
		return NoLayout
	}
	return n.box.mode
}

// LayoutState returns the container's layout state. Sprites are always valid.
func (n *Node) LayoutState() LayoutState {
	if n.box == nil {
		return LayoutValid
	}
	return n.box.state
}

// Background returns the container's background node.
func (n *Node) Background() *Node {
	if n.box == nil {
		return nil
	}
	return n.box.background
}

// Columns returns the column count chosen by the last grid layout.
func (n *Node) Columns() int {
	if n.box == nil {
		return 0
	}
	return n.box.grid.Columns
}

// GridRestarts returns how often the last grid layout overflowed and retried
// with fewer columns.
func (n *Node) GridRestarts() int {
	if n.box == nil {
		return 0
	}
	return n.box.grid.Restarts
}

// ContentBounds returns the union of the children's outer boxes from the
// last arrange, in inner box coordinates.
func (n *Node) ContentBounds() Rect {
	if n.box == nil {
		return Rect{}
	}
	return n.box.bounds
}
